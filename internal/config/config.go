package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the command line programs' settings. The core rolodex
// packages never read it; they receive plain values instead.
type Config struct {
	ContactsFile string `yaml:"contacts_file" mapstructure:"contacts_file"`
	LogLevel     string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat    string `yaml:"log_format" mapstructure:"log_format"`
	DefaultSort  string `yaml:"default_sort" mapstructure:"default_sort"`
}

// Load reads the configuration from config.yaml in the working directory,
// $XDG_CONFIG_HOME/rolodex or ~/.config/rolodex, in that order. Environment
// variables with the ROLODEX_ prefix override file values. A missing config
// file is fine; the defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "rolodex"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "rolodex"))

	// Environment variables
	viper.SetEnvPrefix("ROLODEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("contacts_file", "contacts.json")
	viper.SetDefault("log_level", "warning")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("default_sort", "name")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ContactsFile) == "" {
		return fmt.Errorf("config: contacts_file is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warning", "warn", "error":
	default:
		return fmt.Errorf("config: log_level %q is invalid (must be debug, info, warning, or error)", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format %q is invalid (must be text or json)", c.LogFormat)
	}
	switch strings.ToLower(c.DefaultSort) {
	case "name", "email", "birth_date":
	default:
		return fmt.Errorf("config: default_sort %q is invalid (must be name, email, or birth_date)", c.DefaultSort)
	}
	return nil
}

// SetupLogging installs the process-wide logger according to the
// configuration. Diagnostics go to stderr so they cannot interfere with the
// terminal UI on stdout.
func (c *Config) SetupLogging() {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, options)
	} else {
		handler = slog.NewTextHandler(os.Stderr, options)
	}
	slog.SetDefault(slog.New(handler))
}
