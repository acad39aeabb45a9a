package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func readYAML(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var saved map[string]interface{}
	if err := yaml.Unmarshal(data, &saved); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return saved
}

func TestSaveConfig_SaveGlobal(t *testing.T) {
	cfg := AppSaveConfig()
	cfg.GlobalConfigPath = filepath.Join(t.TempDir(), "apksweep", "config.yaml")

	t.Run("creates config file", func(t *testing.T) {
		if err := cfg.SaveGlobal(KeyWebhookURL, "https://hooks.example.com/a"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}

		saved := readYAML(t, cfg.GlobalConfigPath)
		if saved[KeyWebhookURL] != "https://hooks.example.com/a" {
			t.Errorf("webhook_url = %v", saved[KeyWebhookURL])
		}

		info, err := os.Stat(cfg.GlobalConfigPath)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("perm = %o, want 600", perm)
		}
	})

	t.Run("updates existing config", func(t *testing.T) {
		if err := cfg.SaveGlobal(KeyDryRun, "true"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}

		saved := readYAML(t, cfg.GlobalConfigPath)
		if saved[KeyDryRun] != true {
			t.Errorf("dry_run = %v, want true", saved[KeyDryRun])
		}
		if saved[KeyWebhookURL] != "https://hooks.example.com/a" {
			t.Error("existing key was lost")
		}
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		err := cfg.SaveGlobal("colour", "blue")
		if err == nil || !strings.Contains(err.Error(), "unknown global config key") {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("rejects bad value", func(t *testing.T) {
		err := cfg.SaveGlobal(KeyArchiveRetentionDays, "forever")
		if err == nil || !strings.Contains(err.Error(), "non-negative integer") {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("delete key", func(t *testing.T) {
		if err := cfg.DeleteGlobalKey(KeyDryRun); err != nil {
			t.Fatalf("DeleteGlobalKey() error = %v", err)
		}
		if _, ok := readYAML(t, cfg.GlobalConfigPath)[KeyDryRun]; ok {
			t.Error("dry_run still present")
		}
	})
}

func TestSaveConfig_GlobalNotConfigured(t *testing.T) {
	if err := (SaveConfig{}).SaveGlobal(KeyDryRun, "true"); err == nil {
		t.Error("expected error without a global config dir")
	}
}

func TestSaveConfig_SaveLocal(t *testing.T) {
	root := t.TempDir()
	cfg := AppSaveConfig()

	if err := cfg.SaveLocal(root, KeyOutputDir, "build/out"); err != nil {
		t.Fatalf("SaveLocal() error = %v", err)
	}
	saved := readYAML(t, filepath.Join(root, LocalConfigName))
	if saved[KeyOutputDir] != "build/out" {
		t.Errorf("output_dir = %v", saved[KeyOutputDir])
	}

	if err := cfg.SaveLocal(root, KeySlackWebhookURL, "https://hooks.slack.com/x"); err == nil {
		t.Error("slack_webhook_url must not be saved to local config")
	}
	if err := cfg.SaveLocal("", KeyOutputDir, "x"); err == nil {
		t.Error("expected error without git root")
	}

	if err := cfg.DeleteLocalKey(root, KeyOutputDir); err != nil {
		t.Fatalf("DeleteLocalKey() error = %v", err)
	}
	if _, ok := readYAML(t, filepath.Join(root, LocalConfigName))[KeyOutputDir]; ok {
		t.Error("output_dir still present")
	}
}

func TestValidateValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{KeyDryRun, "true", false},
		{KeyDryRun, "yes", true},
		{KeyArchiveRetentionDays, "0", false},
		{KeyArchiveRetentionDays, "-1", true},
		{KeyLogFormat, "json", false},
		{KeyLogFormat, "yaml", true},
		{KeyLogLevel, "WARN", false},
		{KeyLogLevel, "trace", true},
		{KeyReleaseCommand, " ", true},
		{KeyArchiveDir, "", false},
	}
	for _, tt := range tests {
		err := ValidateValue(tt.key, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateValue(%q, %q) = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
		}
	}
}

func TestParseValue(t *testing.T) {
	if parseValue("TRUE") != true || parseValue("false") != false {
		t.Error("booleans should be parsed")
	}
	if parseValue(".apk") != ".apk" {
		t.Error("strings should pass through")
	}
}
