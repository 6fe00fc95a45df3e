// Package config provides the layered defaults for logargs flags.
//
// Values are applied in order of increasing precedence:
//  1. Hardcoded defaults (NewConfig)
//  2. User config (~/.config/logargs/config.yaml)
//  3. Program config (.logargs.yaml next to the executable, or --config PATH)
//  4. Environment variables (LOGARGS_*)
//
// Explicitly set command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Aman-CERP/logargs/internal/errors"
	"github.com/Aman-CERP/logargs/internal/logging"
)

// Config holds the defaults the command-line flags start from.
type Config struct {
	// Name is the logger name printed in every line.
	Name string `yaml:"name"`

	// LogFile is the log file path, or "None" for no file.
	LogFile Setting `yaml:"log_file"`
	// LogLevel is the console threshold, or "None" for no console.
	LogLevel Setting `yaml:"log_level"`
	// LogLevelFile is the file threshold.
	LogLevelFile string `yaml:"log_level_file"`

	Stderr    bool `yaml:"stderr"`
	NoConsole bool `yaml:"no_console"`
	NoLogFile bool `yaml:"no_log_file"`
	NoColor   bool `yaml:"no_color"`
}

// NewConfig returns a Config populated with the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Name:         logging.DefaultName,
		LogFile:      Setting{Value: logging.DefaultLogFile},
		LogLevel:     Setting{Value: "info"},
		LogLevelFile: "debug",
	}
}

// GetUserConfigPath returns the path to the user configuration file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/logargs/config.yaml.
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "logargs", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "logargs", "config.yaml")
	}
	return filepath.Join(home, ".config", "logargs", "config.yaml")
}

// Load builds the configuration for a program living in dir.
// If explicit is non-empty it is loaded instead of the program config and
// must exist.
func Load(dir, explicit string) (*Config, error) {
	cfg := NewConfig()

	if userPath := GetUserConfigPath(); fileExists(userPath) {
		if err := cfg.loadYAML(userPath); err != nil {
			return nil, err
		}
	}

	if explicit != "" {
		if !fileExists(explicit) {
			return nil, apperrors.New(apperrors.ErrCodeConfigInvalid,
				fmt.Sprintf("config file not found: %s", explicit), nil).
				WithDetail("path", explicit)
		}
		if err := cfg.loadYAML(explicit); err != nil {
			return nil, err
		}
	} else if err := cfg.loadFromDir(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// loadFromDir loads .logargs.yaml or .logargs.yml from dir if present.
func (c *Config) loadFromDir(dir string) error {
	yamlPath := filepath.Join(dir, ".logargs.yaml")
	if fileExists(yamlPath) {
		return c.loadYAML(yamlPath)
	}

	ymlPath := filepath.Join(dir, ".logargs.yml")
	if fileExists(ymlPath) {
		return c.loadYAML(ymlPath)
	}

	return nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.ConfigError(fmt.Sprintf("failed to read config file %s", path), err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return apperrors.ConfigError(fmt.Sprintf("failed to parse config file %s", path), err).
			WithDetail("path", path)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
// A false boolean in a file cannot switch off a true from a lower layer;
// the environment variables can.
func (c *Config) mergeWith(other *Config) {
	if other.Name != "" {
		c.Name = other.Name
	}
	if !other.LogFile.IsZero() {
		c.LogFile = other.LogFile
	}
	if !other.LogLevel.IsZero() {
		c.LogLevel = other.LogLevel
	}
	if other.LogLevelFile != "" {
		c.LogLevelFile = other.LogLevelFile
	}
	if other.Stderr {
		c.Stderr = true
	}
	if other.NoConsole {
		c.NoConsole = true
	}
	if other.NoLogFile {
		c.NoLogFile = true
	}
	if other.NoColor {
		c.NoColor = true
	}
}

// applyEnvOverrides applies LOGARGS_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LOGARGS_LOGFILE"); v != "" {
		c.LogFile = ParseSetting(v)
	}
	if v := os.Getenv("LOGARGS_LOGLEVEL"); v != "" {
		c.LogLevel = ParseSetting(v)
	}
	if v := os.Getenv("LOGARGS_LOGLEVELFILE"); v != "" {
		c.LogLevelFile = v
	}
	if v := os.Getenv("LOGARGS_STDERR"); v != "" {
		c.Stderr = parseBool(v)
	}
	if v := os.Getenv("LOGARGS_NOCONSOLE"); v != "" {
		c.NoConsole = parseBool(v)
	}
	if v := os.Getenv("LOGARGS_NOLOGFILE"); v != "" {
		c.NoLogFile = parseBool(v)
	}
	if v := os.Getenv("LOGARGS_NO_COLOR"); v != "" {
		c.NoColor = parseBool(v)
	}
}

// Options converts the configuration into resolver input for a program in dir.
func (c *Config) Options(dir string) logging.Options {
	return logging.Options{
		LogFile:         c.LogFile.Value,
		FileDisabled:    c.LogFile.Absent,
		NoLogFile:       c.NoLogFile,
		Stderr:          c.Stderr,
		NoConsole:       c.NoConsole,
		ConsoleDisabled: c.LogLevel.Absent,
		ConsoleLevel:    c.LogLevel.Value,
		FileLevel:       c.LogLevelFile,
		ProgramDir:      dir,
		Name:            c.Name,
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
