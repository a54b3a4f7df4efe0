package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Load builds the configuration from defaults, an optional YAML file and
// command line flags, in increasing priority. A nil flags value skips the
// flag layer.
func Load(flags *Flags) (*Config, error) {
	cfg := Default()

	path := ""
	if flags != nil && flags.ConfigFile != "" {
		path = flags.ConfigFile
	} else {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		if err := flags.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// findConfigFile looks for a config file in the working directory, then in
// the per-user config directory. Returns "" when none exists.
func findConfigFile() string {
	candidates := []string{
		configFileName,
		filepath.Join(ConfigDir(), configFileName),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ConfigDir returns the per-user configuration directory.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "oceangrid")
}
