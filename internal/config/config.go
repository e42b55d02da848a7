// Package config handles jiggle settings loaded from a YAML file and
// command line flags. Out-of-range values are clamped, never fatal.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Bounds for the two tunable knobs. Values outside these ranges are
// clamped on every write path.
const (
	MinIdleThreshold = 6 * time.Second
	MaxIdleThreshold = 3600 * time.Second
	MinMoveInterval  = 1 * time.Second
	MaxMoveInterval  = 60 * time.Second

	DefaultIdleThreshold = 30 * time.Second
	DefaultMoveInterval  = 10 * time.Second
)

// Duration is a wrapper around time.Duration that supports YAML
// unmarshaling from human-readable strings like "30s", "1m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Settings holds the two knobs the jiggle coordinator reads each tick.
type Settings struct {
	IdleThreshold Duration `yaml:"idle_threshold"`
	MoveInterval  Duration `yaml:"move_interval"`
}

// Default returns settings with documented default values.
func Default() Settings {
	return Settings{
		IdleThreshold: Duration{DefaultIdleThreshold},
		MoveInterval:  Duration{DefaultMoveInterval},
	}
}

// Clamp forces both knobs into their allowed ranges.
func (s *Settings) Clamp() {
	s.IdleThreshold.Duration = clamp(s.IdleThreshold.Duration, MinIdleThreshold, MaxIdleThreshold)
	s.MoveInterval.Duration = clamp(s.MoveInterval.Duration, MinMoveInterval, MaxMoveInterval)
}

func clamp(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "jiggle", "config.yaml")
}

// Load reads settings from a YAML file. A missing file is not an
// error; defaults are returned. Loaded values are clamped.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if s.IdleThreshold.Duration == 0 {
		s.IdleThreshold.Duration = DefaultIdleThreshold
	}
	if s.MoveInterval.Duration == 0 {
		s.MoveInterval.Duration = DefaultMoveInterval
	}
	s.Clamp()
	return s, nil
}
