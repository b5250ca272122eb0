// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hub

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoggerConfig declares the desired state of one named logger. Level names
// follow log/slog ("debug", "info", "warn", "error", with optional offsets
// like "info+2"), plus "all" and "none".
type LoggerConfig struct {
	Level     string `yaml:"level,omitempty"`
	Propagate *bool  `yaml:"propagate,omitempty"`
	Disabled  bool   `yaml:"disabled,omitempty"`
	Console   bool   `yaml:"console,omitempty"`
	File      string `yaml:"file,omitempty"`
}

// Config declares the configuration of a hub's loggers, keyed by name.
type Config struct {
	Root    LoggerConfig            `yaml:"root"`
	Loggers map[string]LoggerConfig `yaml:"loggers"`
}

// ParseConfig decodes a YAML logging configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply configures the hub's loggers as cfg declares. Loggers the config
// does not mention are left alone; mentioned loggers keep their existing
// handlers unless the config attaches console or file output.
func (h *Hub) Apply(cfg *Config) error {
	if err := applyLogger(h.Root(), cfg.Root); err != nil {
		return err
	}
	for name, lc := range cfg.Loggers {
		if err := applyLogger(h.Logger(name), lc); err != nil {
			return err
		}
	}
	return nil
}

func applyLogger(l *Logger, lc LoggerConfig) error {
	if lc.Level != "" {
		level, err := parseLevel(lc.Level)
		if err != nil {
			return ConfigError{Logger: l.Name(), Reason: err.Error()}
		}
		l.SetLevel(level)
	}
	if lc.Propagate != nil {
		l.SetPropagate(*lc.Propagate)
	}
	l.SetDisabled(lc.Disabled)

	var handlers []Handler
	if lc.Console {
		handlers = append(handlers, NewConsoleHandler(os.Stdout, nil))
	}
	if lc.File != "" {
		handlers = append(handlers, NewFileHandler(lc.File, nil))
	}
	if len(handlers) > 0 {
		l.SetHandlers(handlers)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "all":
		return LevelAll, nil
	case "none":
		return LevelNone, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}

// ConfigError reports an invalid logger configuration entry.
type ConfigError struct {
	Logger string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for logger %q: %s", e.Logger, e.Reason)
}
