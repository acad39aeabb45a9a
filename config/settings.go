package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Settings is the typed view of a Resolved configuration.
type Settings struct {
	ProjectRoot          string
	OutputDir            string
	PackageSuffixes      []string
	ChecksumSuffixes     []string
	DryRun               bool
	ArchiveDir           string
	ArchiveRetentionDays int
	DebugCommand         []string
	ReleaseCommand       []string
	LogLevel             string
	LogFormat            string
	WebhookURL           string
	SlackWebhookURL      string
}

// Load converts resolved values into Settings. Values that fail to parse
// fall back to their defaults and are reported as warnings.
//
// Relative output and archive directories are anchored at the git root when
// one was found, so apksweep behaves the same from any subdirectory.
func Load(r *Resolved) (Settings, []string) {
	var warnings []string
	defaults := DefaultValues()

	boolValue := func(key string) bool {
		raw := r.Get(key)
		v, err := strconv.ParseBool(raw)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %q is not a boolean, using %s", key, raw, defaults[key]))
			v, _ = strconv.ParseBool(defaults[key])
		}
		return v
	}

	intValue := func(key string) int {
		raw := r.Get(key)
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || v < 0 {
			warnings = append(warnings, fmt.Sprintf("%s: %q is not a non-negative integer, using %s", key, raw, defaults[key]))
			v, _ = strconv.Atoi(defaults[key])
		}
		return v
	}

	commandValue := func(key string) []string {
		fields := strings.Fields(r.Get(key))
		if len(fields) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s: empty command, using %q", key, defaults[key]))
			fields = strings.Fields(defaults[key])
		}
		return fields
	}

	format := strings.ToLower(r.Get(KeyLogFormat))
	if format != "text" && format != "json" {
		warnings = append(warnings, fmt.Sprintf("%s: %q is not text or json, using text", KeyLogFormat, r.Get(KeyLogFormat)))
		format = "text"
	}

	s := Settings{
		ProjectRoot:          r.GitRoot(),
		OutputDir:            r.Get(KeyOutputDir),
		PackageSuffixes:      splitList(r.Get(KeyPackageSuffixes)),
		ChecksumSuffixes:     splitList(r.Get(KeyChecksumSuffixes)),
		DryRun:               boolValue(KeyDryRun),
		ArchiveDir:           r.Get(KeyArchiveDir),
		ArchiveRetentionDays: intValue(KeyArchiveRetentionDays),
		DebugCommand:         commandValue(KeyDebugCommand),
		ReleaseCommand:       commandValue(KeyReleaseCommand),
		LogLevel:             r.Get(KeyLogLevel),
		LogFormat:            format,
		WebhookURL:           r.Get(KeyWebhookURL),
		SlackWebhookURL:      r.Get(KeySlackWebhookURL),
	}

	if s.OutputDir == "" {
		s.OutputDir = defaults[KeyOutputDir]
	}
	s.OutputDir = anchor(s.ProjectRoot, s.OutputDir)
	if s.ArchiveDir != "" {
		s.ArchiveDir = anchor(s.ProjectRoot, s.ArchiveDir)
	}

	return s, warnings
}

func anchor(root, path string) string {
	if root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
