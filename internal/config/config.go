// Package config loads the ambient tunables for the hexroute driver:
// nothing here ever changes the grid's observable semantics, only whether
// and where the optional debug server listens and how verbosely the driver
// logs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all driver configuration.
type Config struct {
	Observability ObservabilityConfig `yaml:"observability"`
	Log           LogConfig           `yaml:"log"`
}

// ObservabilityConfig controls the optional Prometheus/health debug server.
type ObservabilityConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
}

// LogConfig controls the verbosity of the standard library logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultListenAddr is the loopback address the debug server binds when the
// configuration does not specify one.
const DefaultListenAddr = "127.0.0.1:9090"

// Load reads configuration from a YAML file at path. A missing file is not
// an error: the driver falls back to defaults, matching the error-handling
// design's rule that configuration never blocks startup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration the driver falls back to when no
// config file is readable.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Observability.ListenAddr == "" {
		cfg.Observability.ListenAddr = DefaultListenAddr
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// levelRank orders log levels from most to least verbose.
var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// LevelEnabled reports whether a message at msgLevel should be logged given
// the configured threshold. An unrecognized level is treated as "info" on
// either side.
func LevelEnabled(configured, msgLevel string) bool {
	c, ok := levelRank[configured]
	if !ok {
		c = levelRank["info"]
	}
	m, ok := levelRank[msgLevel]
	if !ok {
		m = levelRank["info"]
	}
	return m >= c
}
