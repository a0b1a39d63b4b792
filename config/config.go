package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-configurable defaults. Flags override these.
type Config struct {
	IntervalSec int  `yaml:"interval_sec"`
	Compact     bool `yaml:"compact"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		IntervalSec: 2,
		Compact:     false,
	}
}

// Path returns ~/.config/edtop/config.yaml (or XDG_CONFIG_HOME).
// Returns empty string if the home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "edtop", "config.yaml")
}

// Load loads config from disk; returns defaults on any error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	if cfg.IntervalSec <= 0 {
		cfg.IntervalSec = Default().IntervalSec
	}
	return cfg
}
