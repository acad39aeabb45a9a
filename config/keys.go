package config

import "sort"

// Configuration keys.
const (
	KeyOutputDir            = "output_dir"
	KeyPackageSuffixes      = "package_suffixes"
	KeyChecksumSuffixes     = "checksum_suffixes"
	KeyDryRun               = "dry_run"
	KeyArchiveDir           = "archive_dir"
	KeyArchiveRetentionDays = "archive_retention_days"
	KeyDebugCommand         = "debug_command"
	KeyReleaseCommand       = "release_command"
	KeyLogLevel             = "log_level"
	KeyLogFormat            = "log_format"
	KeyWebhookURL           = "webhook_url"
	KeySlackWebhookURL      = "slack_webhook_url"
)

// App-level names for the resolver.
const (
	EnvPrefix       = "APKSWEEP_"
	GlobalConfigDir = "apksweep"
	LocalConfigName = ".apksweep.yaml"
)

// DefaultValues returns the built-in value of every key.
func DefaultValues() map[string]string {
	return map[string]string{
		KeyOutputDir:            "build/app/outputs/flutter-apk",
		KeyPackageSuffixes:      ".apk",
		KeyChecksumSuffixes:     ".apk.sha1",
		KeyDryRun:               "false",
		KeyArchiveDir:           "",
		KeyArchiveRetentionDays: "30",
		KeyDebugCommand:         "flutter build apk --debug",
		KeyReleaseCommand:       "flutter build apk --release",
		KeyLogLevel:             "info",
		KeyLogFormat:            "text",
		KeyWebhookURL:           "",
		KeySlackWebhookURL:      "",
	}
}

// KnownKeys returns every key, sorted.
func KnownKeys() []string {
	defaults := DefaultValues()
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// userOnlyKeys hold secrets and belong in the per-user global file, not in a
// checked-in .apksweep.yaml.
var userOnlyKeys = map[string]bool{
	KeyWebhookURL:      true,
	KeySlackWebhookURL: true,
}

// LocalKeys returns the keys allowed in the project-local config file.
func LocalKeys() []string {
	var keys []string
	for _, k := range KnownKeys() {
		if !userOnlyKeys[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// AppResolverConfig returns the resolver settings apksweep runs with.
func AppResolverConfig() ResolverConfig {
	return ResolverConfig{
		EnvPrefix:       EnvPrefix,
		GlobalConfigDir: GlobalConfigDir,
		LocalConfigName: LocalConfigName,
		Defaults:        DefaultValues(),
		ValidGlobalKeys: KnownKeys(),
		ValidLocalKeys:  LocalKeys(),
	}
}

// AppSaveConfig returns the SaveConfig matching AppResolverConfig.
func AppSaveConfig() SaveConfig {
	return SaveConfig{
		GlobalConfigDir: GlobalConfigDir,
		LocalConfigName: LocalConfigName,
		ValidGlobalKeys: KnownKeys(),
		ValidLocalKeys:  LocalKeys(),
	}
}
