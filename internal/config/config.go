// Package config loads optional YAML configuration: pattern-set
// overrides for the region finders and bounds for the cache and walker.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chatnav/internal/finder"
)

// Config is the YAML file shape. Every field is optional; zero values
// keep the built-in defaults.
type Config struct {
	// DebuggerURL is the DevTools endpoint of the running chat client.
	DebuggerURL string `yaml:"debugger_url"`
	// AppTitle selects the page whose title contains this substring.
	AppTitle string `yaml:"app_title"`

	CacheTTLSeconds    float64 `yaml:"cache_ttl_seconds"`
	WalkMaxDepth       int     `yaml:"walk_max_depth"`
	WalkTimeoutSeconds float64 `yaml:"walk_timeout_seconds"`

	Patterns finder.Patterns `yaml:"patterns"`
}

// Load reads path. A missing path ("" or nonexistent file) returns the
// zero config without error; a malformed file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// CacheTTL returns the configured TTL, or 0 for the default.
func (c *Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds * float64(time.Second))
}

// WalkTimeout returns the configured walk timeout, or 0 for the default.
func (c *Config) WalkTimeout() time.Duration {
	if c.WalkTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.WalkTimeoutSeconds * float64(time.Second))
}
