// Package config handles configuration loading and validation for pnmedit.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ironsheep/pnmedit/internal/logging"
	"github.com/ironsheep/pnmedit/internal/pnm"
)

// Config is the top-level configuration, read from a TOML file.
//
//	[log]
//	level = "debug"
//	format = "json"
//	file = "/var/log/pnmedit.log"
//
//	[editor]
//	default_save_format = "ascii"
//	prompt = "> "
type Config struct {
	Log    LogConfig    `toml:"log"`
	Editor EditorConfig `toml:"editor"`
}

// LogConfig controls diagnostics output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format"`

	// File, when set, sends logs to a rotated file instead of stderr.
	File string `toml:"file"`

	MaxSizeMB  int  `toml:"max_size_mb"`
	MaxBackups int  `toml:"max_backups"`
	MaxAgeDays int  `toml:"max_age_days"`
	Compress   bool `toml:"compress"`
}

// EditorConfig controls the command loop.
type EditorConfig struct {
	// DefaultSaveFormat is used by SAVE when no format is given: "binary" or "ascii".
	DefaultSaveFormat string `toml:"default_save_format"`

	// Prompt is printed before each command; empty for none.
	Prompt string `toml:"prompt"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Editor: EditorConfig{
			DefaultSaveFormat: pnm.Binary.String(),
		},
	}
}

// Load reads the TOML file at path over the defaults, applies environment
// overrides and validates the result. An empty path or a file that does not
// exist yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			md, err := toml.Decode(string(data), cfg)
			if err != nil {
				return nil, fmt.Errorf("decode TOML: %w", err)
			}
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return nil, fmt.Errorf("decode TOML: unknown keys %s", strings.Join(keys, ", "))
			}
		}
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides replaces settings from PNMEDIT_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PNMEDIT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PNMEDIT_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("PNMEDIT_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// SaveVariant returns the parsed DefaultSaveFormat. Call Validate first.
func (c *Config) SaveVariant() pnm.Variant {
	v, err := pnm.ParseVariant(c.Editor.DefaultSaveFormat)
	if err != nil {
		return pnm.Binary
	}
	return v
}

// FileOptions converts the log settings for logging.Output.
func (c *Config) FileOptions() logging.FileOptions {
	return logging.FileOptions{
		Path:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}
}
