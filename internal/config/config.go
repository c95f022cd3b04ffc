// Package config loads the user's todo configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/todo/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const (
	// EnvDatabase overrides the storage file location from the config file
	EnvDatabase = "TODO_DATABASE"

	// EnvThemeFile points at a YAML file whose theme section is merged in
	EnvThemeFile = "TODO_THEME_FILE"

	appDirName     = "todo-cli"
	configFileName = "config.yaml"
)

// Config represents the application configuration
type Config struct {
	// Database is the storage file path; empty means the default location
	Database    string             `yaml:"database,omitempty"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		ColorScheme: DefaultColorScheme(),
	}
}

// loadThemeFile loads and merges theme from TODO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies environment overrides on top of the file values
func (c *Config) applyEnv() {
	if db := os.Getenv(EnvDatabase); db != "" {
		c.Database = db
	}
	loadThemeFile(c)
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist. The returned config is
// always usable: a non-nil error reports a config file that was ignored.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultsWithEnv(), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults; an
// unreadable or invalid file yields the defaults plus an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultsWithEnv(), nil
	}
	if err != nil {
		return defaultsWithEnv(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if errs := Validate(data); len(errs) > 0 {
		return defaultsWithEnv(), fmt.Errorf("invalid config %s: %w", path, errors.Join(errs...))
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return defaultsWithEnv(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

func defaultsWithEnv() *Config {
	config := Default()
	config.applyEnv()
	return config
}

// Save writes the config to the user's config directory and returns the
// path written. The file is replaced atomically.
func (c *Config) Save() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	return configPath, atomicWriteFile(configPath, data)
}

// Path returns the location Load reads the config file from
func Path() (string, error) {
	return getConfigPath()
}

// atomicWriteFile writes data to a temp file next to path and renames it over path
func atomicWriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+configFileName+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appDirName, configFileName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appDirName, configFileName), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.ColorScheme.ApplyDefaults()
}
