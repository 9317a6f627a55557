// Package config loads runtime settings from defaults, an optional config file,
// HOPPER_* environment variables and bound command-line flags
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/hopper/input"
	"github.com/lixenwraith/hopper/parameter"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "HOPPER"

// FileName is the config file base name searched in the working directory
const FileName = "hopper"

// AudioConfig holds sound cue settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// InputConfig holds keyboard source settings
// Keys overrides default bindings: key name to button name, "none" unbinds
type InputConfig struct {
	HoldFrames int               `mapstructure:"holdFrames"`
	JumpButton string            `mapstructure:"jumpButton"`
	Keys       map[string]string `mapstructure:"keys"`
}

// EntityConfig holds scene composition settings
type EntityConfig struct {
	CascadeChild bool `mapstructure:"cascadeChild"`
}

// ReplayConfig holds recording settings
// Record and Play name a recording; empty disables the mode
type ReplayConfig struct {
	DB     string `mapstructure:"db"`
	Record string `mapstructure:"record"`
	Play   string `mapstructure:"play"`
}

// HeadlessConfig runs the loop without a terminal for a fixed frame count
type HeadlessConfig struct {
	Frames int `mapstructure:"frames"`
}

// MetricsConfig toggles OpenTelemetry counters
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the resolved runtime configuration
type Config struct {
	Debug    bool           `mapstructure:"debug"`
	LogDir   string         `mapstructure:"logDir"`
	LogLevel string         `mapstructure:"logLevel"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Input    InputConfig    `mapstructure:"input"`
	Entity   EntityConfig   `mapstructure:"entity"`
	Replay   ReplayConfig   `mapstructure:"replay"`
	Headless HeadlessConfig `mapstructure:"headless"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// SetDefaults registers every key with its default value
// Keys without a default are invisible to environment overrides
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("logDir", "logs")
	v.SetDefault("logLevel", "info")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("input.holdFrames", parameter.DefaultHoldFrames)
	v.SetDefault("input.jumpButton", "A")
	v.SetDefault("input.keys", map[string]string{})

	v.SetDefault("entity.cascadeChild", false)

	v.SetDefault("replay.db", "hopper.db")
	v.SetDefault("replay.record", "")
	v.SetDefault("replay.play", "")

	v.SetDefault("headless.frames", 0)

	v.SetDefault("metrics.enabled", false)
}

// Load resolves configuration into a new viper instance
// An explicit path must exist; otherwise hopper.{toml,json,yaml} in dir is optional
// flags maps config keys to command-line flags; changed flags override every other source
func Load(path, dir string, flags map[string]*pflag.Flag) (*Config, *viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(FileName)
		if dir == "" {
			dir = "."
		}
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	for key, flag := range flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, nil, fmt.Errorf("bind flag for %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Validate rejects values the loop cannot run with
func (c *Config) Validate() error {
	if c.Input.HoldFrames < 1 {
		return fmt.Errorf("input.holdFrames must be at least 1, got %d", c.Input.HoldFrames)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0,1], got %g", c.Audio.Volume)
	}
	if c.Headless.Frames < 0 {
		return fmt.Errorf("headless.frames must not be negative, got %d", c.Headless.Frames)
	}
	if _, err := input.ParseButton(c.Input.JumpButton); err != nil {
		return fmt.Errorf("input.jumpButton: %w", err)
	}
	if _, err := input.LoadKeyBindings(c.Input.Keys); err != nil {
		return fmt.Errorf("input.keys: %w", err)
	}
	if c.Replay.Record != "" && c.Replay.Play != "" {
		return errors.New("replay.record and replay.play are mutually exclusive")
	}
	return nil
}

// JumpButton returns the configured jump button, A when unset or invalid
func (c *Config) JumpButton() input.Button {
	b, err := input.ParseButton(c.Input.JumpButton)
	if err != nil {
		return input.ButtonA
	}
	return b
}

// KeyTable returns the default bindings with the configured overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	over, err := input.LoadKeyBindings(c.Input.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), over), nil
}
