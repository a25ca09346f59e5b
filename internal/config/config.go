// Package config loads the algoviz YAML configuration.
//
// A file is decoded into a generic map, laid over Default with mapstructure
// (durations may be written as "250ms"), and validated before use. Keys the
// file does not mention keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/hanoi"
	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/sorting"
)

// ErrInvalid is wrapped by every rejected configuration.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full set of tunables.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	Color    bool   `mapstructure:"color" yaml:"color"`

	Run   RunConfig   `mapstructure:"run" yaml:"run"`
	Graph GraphConfig `mapstructure:"graph" yaml:"graph"`
	Sort  SortConfig  `mapstructure:"sort" yaml:"sort"`
	Hanoi HanoiConfig `mapstructure:"hanoi" yaml:"hanoi"`
}

// RunConfig tunes the suspension primitive.
type RunConfig struct {
	Quantum time.Duration `mapstructure:"quantum" yaml:"quantum" validate:"gt=0"`
	Poll    time.Duration `mapstructure:"poll" yaml:"poll" validate:"gt=0"`
}

// GraphConfig tunes the traversal lab.
type GraphConfig struct {
	Delay time.Duration `mapstructure:"delay" yaml:"delay" validate:"gte=0"`
}

// SortConfig tunes the sorting lab.
type SortConfig struct {
	Speed     float64 `mapstructure:"speed" yaml:"speed" validate:"gt=0"`
	MaxHeight float64 `mapstructure:"max_height" yaml:"max_height" validate:"gt=0"`
}

// HanoiConfig tunes the Tower of Hanoi lab.
type HanoiConfig struct {
	Disks int           `mapstructure:"disks" yaml:"disks" validate:"min=1,max=10"`
	Delay time.Duration `mapstructure:"delay" yaml:"delay" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Color:    true,
		Run: RunConfig{
			Quantum: run.DefaultQuantum,
			Poll:    run.DefaultPollInterval,
		},
		Graph: GraphConfig{Delay: bfs.DefaultDelay},
		Sort:  SortConfig{Speed: 1, MaxHeight: sorting.DefaultMaxHeight},
		Hanoi: HanoiConfig{Disks: 3, Delay: hanoi.DefaultDelay},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: yaml: %v", ErrInvalid, err)
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err = dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every bound and reports all violations at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag(), fe.Param()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Marshal renders c as YAML, e.g. for a starter file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
