package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all fibrun configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Argument defaults used when a positional token is absent or unparseable
	Defaults DefaultsConfig `yaml:"defaults"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultsConfig holds the fallback values for the positional arguments.
type DefaultsConfig struct {
	N    uint `yaml:"n"`
	Runs uint `yaml:"runs"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "fibrun",
		Version: "1.0.0",

		Defaults: DefaultsConfig{
			N:    60,
			Runs: 1,
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing file
// yields the defaults. Environment overrides apply in every case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		cfg.applyEnvOverrides()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Missing file: defaults plus environment
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "FIB_CONFIG"

// LoadFromEnv loads the file named by FIB_CONFIG, or the defaults when unset.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

// applyEnvOverrides applies FIB_* environment variables on top of the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FIB_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = debug
		}
	}
	if level := os.Getenv("FIB_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("FIB_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !isOneOf(c.Logging.Level, ValidLevels) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !isOneOf(c.Logging.Format, ValidFormats) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}

func isOneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
