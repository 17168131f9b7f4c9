// Package config loads app-level configuration: which model and endpoint
// the coach talks to, and where local data lives. Resolution precedence
// is environment variables over the config file over defaults. The user
// credential itself is not configured here — it lives in the store's
// settings, where the product manages it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the app-level configuration.
type Config struct {
	// Model overrides the provider's default model.
	Model string `yaml:"model"`

	// BaseURL overrides the OpenAI-compatible endpoint.
	BaseURL string `yaml:"base_url"`

	// DataDir overrides where collection snapshots are stored.
	DataDir string `yaml:"data_dir"`
}

// DefaultPath returns ~/.jobflow/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".jobflow", "config.yaml"), nil
}

// Load reads the config file at path (DefaultPath when empty) and
// applies environment overrides. A missing file is not an error; a
// present but unparseable file is.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets the environment win over the file.
func (c *Config) applyEnv() {
	if v := os.Getenv("JOBFLOW_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("JOBFLOW_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("JOBFLOW_DATA_DIR"); v != "" {
		c.DataDir = v
	}
}
