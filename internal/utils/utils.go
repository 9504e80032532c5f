package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ToolConfig is the optional hskctl.yaml at the project root. Every field
// has a default, so the file only needs to exist when the operator wants
// to change one.
type ToolConfig struct {
	Driver    string `yaml:"driver"`
	ExportDir string `yaml:"export_dir"`
}

// DefaultToolConfig returns the settings used when no hskctl.yaml exists.
func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		Driver:    "mysql",
		ExportDir: ".",
	}
}

// FindConfigFile tries to find the hskctl config file in the current
// directory or any parent directory, falling back to the global config
// in the home directory.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %v", err)
	}

	for {
		configPath := filepath.Join(dir, "hskctl.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %v", err)
	}

	globalConfig := filepath.Join(homeDir, ".hskctl", "config.yaml")
	if _, err := os.Stat(globalConfig); err == nil {
		return globalConfig, nil
	}

	return "", fmt.Errorf("no config file found in project or ~/.hskctl/config.yaml")
}

// ReadToolConfig parses an hskctl.yaml and fills in defaults for any
// field left empty.
func ReadToolConfig(configPath string) (*ToolConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %v", err)
	}

	cfg := &ToolConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %v", err)
	}

	defaults := DefaultToolConfig()
	if cfg.Driver == "" {
		cfg.Driver = defaults.Driver
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = defaults.ExportDir
	}

	return cfg, nil
}

// LoadToolConfig locates and reads hskctl.yaml; a missing file is not an
// error and yields the defaults.
func LoadToolConfig() (*ToolConfig, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		return DefaultToolConfig(), nil
	}
	return ReadToolConfig(configPath)
}

// TimestampedName builds the export file name, e.g.
// hsk_words_20260827_153000.csv.
func TimestampedName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("20060102_150405"))
}
