// Package config loads optional run defaults from a YAML file.
// Command-line flags always win over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries run defaults that are awkward to repeat on every
// invocation.
type Config struct {
	Threads       int    `yaml:"threads"`
	StatsInterval int    `yaml:"stats_interval"`
	SessionDir    string `yaml:"session_dir"`
	OfficeTool    string `yaml:"office_tool"`
}

// Default returns the built-in defaults: single-threaded, stats every
// 60 seconds, no session journal.
func Default() Config {
	return Config{
		Threads:       0,
		StatsInterval: 60,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Threads < 0 {
		return cfg, fmt.Errorf("parse %s: threads must not be negative", path)
	}
	return cfg, nil
}
