package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Defaults applied by ApplyDefaults.
const (
	DefaultAddr              = ":8080"
	DefaultIntervalMS        = 1000
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "console"
	DefaultShutdownTimeoutMS = 5000
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by ApplyDefaults.
type Config struct {
	Addr              string   `json:"addr" yaml:"addr" toml:"addr"`
	SourceName        string   `json:"source_name" yaml:"source_name" toml:"source_name"`
	IntervalMS        int      `json:"interval_ms" yaml:"interval_ms" toml:"interval_ms"`
	LogLevel          string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat         string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	CORSEnabled       bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins       []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	ShutdownTimeoutMS int      `json:"shutdown_timeout_ms" yaml:"shutdown_timeout_ms" toml:"shutdown_timeout_ms"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyDefaults fills unspecified fields.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.IntervalMS <= 0 {
		c.IntervalMS = DefaultIntervalMS
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.ShutdownTimeoutMS <= 0 {
		c.ShutdownTimeoutMS = DefaultShutdownTimeoutMS
	}
}

// Interval is IntervalMS as a duration.
func (c Config) Interval() time.Duration { return time.Duration(c.IntervalMS) * time.Millisecond }

// ShutdownTimeout is ShutdownTimeoutMS as a duration.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}
