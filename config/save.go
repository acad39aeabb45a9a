package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveConfig provides methods to save configuration values.
type SaveConfig struct {
	// GlobalConfigDir is the directory under ~/.config/ for global config.
	GlobalConfigDir string

	// GlobalConfigFile is the filename. Defaults to "config.yaml".
	GlobalConfigFile string

	// GlobalConfigPath overrides the computed global config location.
	GlobalConfigPath string

	// LocalConfigName is the filename for local config in git root.
	LocalConfigName string

	// ValidGlobalKeys lists keys that can be set in global config.
	ValidGlobalKeys []string

	// ValidLocalKeys lists keys that can be set in local config.
	ValidLocalKeys []string
}

func (c SaveConfig) globalPath() (string, error) {
	path := GlobalPath(ResolverConfig{
		GlobalConfigDir:  c.GlobalConfigDir,
		GlobalConfigFile: c.GlobalConfigFile,
		GlobalConfigPath: c.GlobalConfigPath,
	})
	if path == "" {
		return "", fmt.Errorf("global config directory not configured")
	}
	return path, nil
}

// SaveGlobal saves a key-value pair to the global config file.
func (c SaveConfig) SaveGlobal(key, value string) error {
	if len(c.ValidGlobalKeys) > 0 && !contains(c.ValidGlobalKeys, key) {
		return fmt.Errorf("unknown global config key: %s\n\nValid keys: %s",
			key, strings.Join(c.ValidGlobalKeys, ", "))
	}
	if err := ValidateValue(key, value); err != nil {
		return err
	}

	configPath, err := c.globalPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return err
	}
	// Global config may carry webhook URLs
	return updateFile(configPath, 0o600, func(m map[string]interface{}) {
		m[key] = parseValue(value)
	})
}

// SaveLocal saves a key-value pair to the local config file in the git root.
func (c SaveConfig) SaveLocal(gitRoot, key, value string) error {
	if gitRoot == "" {
		return fmt.Errorf("git root not found")
	}
	if c.LocalConfigName == "" {
		return fmt.Errorf("local config name not configured")
	}
	if len(c.ValidLocalKeys) > 0 && !contains(c.ValidLocalKeys, key) {
		return fmt.Errorf("unknown local config key: %s\n\nValid keys: %s",
			key, strings.Join(c.ValidLocalKeys, ", "))
	}
	if err := ValidateValue(key, value); err != nil {
		return err
	}

	configPath := filepath.Join(gitRoot, c.LocalConfigName)
	// Local config is shared and should be readable
	return updateFile(configPath, 0o644, func(m map[string]interface{}) {
		m[key] = parseValue(value)
	})
}

// DeleteGlobalKey removes a key from the global config.
func (c SaveConfig) DeleteGlobalKey(key string) error {
	configPath, err := c.globalPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil // Nothing to delete
	}
	return updateFile(configPath, 0o600, func(m map[string]interface{}) {
		delete(m, key)
	})
}

// DeleteLocalKey removes a key from the local config in the git root.
func (c SaveConfig) DeleteLocalKey(gitRoot, key string) error {
	if gitRoot == "" || c.LocalConfigName == "" {
		return nil
	}
	configPath := filepath.Join(gitRoot, c.LocalConfigName)
	if _, err := os.Stat(configPath); err != nil {
		return nil
	}
	return updateFile(configPath, 0o644, func(m map[string]interface{}) {
		delete(m, key)
	})
}

func updateFile(path string, perm os.FileMode, mutate func(map[string]interface{})) error {
	var existing map[string]interface{}
	if data, readErr := os.ReadFile(path); readErr == nil {
		if err := yaml.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}

	mutate(existing)

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm) //nolint:gosec
}

// ValidateValue checks that value parses for key.
func ValidateValue(key, value string) error {
	switch key {
	case KeyDryRun:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
	case KeyArchiveRetentionDays:
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
	case KeyLogFormat:
		if value != "text" && value != "json" {
			return fmt.Errorf("%s must be text or json, got %q", key, value)
		}
	case KeyLogLevel:
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("%s must be debug, info, warn or error, got %q", key, value)
		}
	case KeyDebugCommand, KeyReleaseCommand, KeyOutputDir:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}

// parseValue converts string values to appropriate types for YAML.
func parseValue(value string) interface{} {
	lower := strings.ToLower(value)
	if lower == "true" {
		return true
	}
	if lower == "false" {
		return false
	}
	return value
}
