package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name of the optional configuration file
const FileName = "zamm.json"

// Log formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrNotFound is returned when no zamm.json exists in the directory tree
var ErrNotFound = errors.New("no " + FileName + " found")

// Config represents the zamm.json configuration file
type Config struct {
	Log         LogConfig         `json:"log"`
	Preferences PreferencesConfig `json:"preferences"`
}

// LogConfig controls diagnostic output on stderr
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// PreferencesConfig locates preferences.yaml. An empty Dir means the user config directory.
type PreferencesConfig struct {
	Dir string `json:"dir"`
}

// Default returns the configuration used when no zamm.json is present
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig loads zamm.json from the current directory or a parent directory.
// A missing file yields the defaults and an empty directory.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, root, err := loadConfigFromDir(dir)
	if errors.Is(err, ErrNotFound) {
		return Default(), "", nil
	}
	return cfg, root, err
}

// LoadConfigFromPath loads the configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configured values
func (c *Config) Validate() error {
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
}

func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatConsole
	}
}

// loadConfigFromDir searches for zamm.json in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, startDir)
}
