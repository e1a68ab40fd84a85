// Package config loads flexcalc settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats understood by flexcalc.
const (
	FormatGrid  = "grid"
	FormatTable = "table"
	FormatPlain = "plain"
)

// Border styles for grid output.
const (
	BorderSingle  = "single"
	BorderDouble  = "double"
	BorderRounded = "rounded"
	BorderThick   = "thick"
)

type Config struct {
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Format string    `yaml:"format"`
	Border string    `yaml:"border"`
	Log    LogConfig `yaml:"log"`
}

// LogConfig selects where debug output goes. An empty File disables it.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Width:  80,
		Height: 24,
		Format: FormatGrid,
		Border: BorderRounded,
		Log:    LogConfig{Level: "info"},
	}
}

func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path. A missing file yields the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("viewport %dx%d must not be negative", c.Width, c.Height)
	}
	switch c.Format {
	case "", FormatGrid, FormatTable, FormatPlain:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch c.Border {
	case "", BorderSingle, BorderDouble, BorderRounded, BorderThick:
	default:
		return fmt.Errorf("unknown border %q", c.Border)
	}
	return nil
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Border == "" {
		c.Border = def.Border
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Path returns the config location under $XDG_CONFIG_HOME, falling back
// to ~/.config.
func Path() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "flexcalc", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "flexcalc", "config.yaml")
	}

	return filepath.Join(home, ".config", "flexcalc", "config.yaml")
}
