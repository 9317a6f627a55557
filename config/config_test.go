package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/hopper/input"
	"github.com/lixenwraith/hopper/parameter"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, _, err := Load("", t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Debug {
		t.Error("Expected debug off by default")
	}
	if cfg.LogDir != "logs" || cfg.LogLevel != "info" {
		t.Errorf("Unexpected log defaults: %q %q", cfg.LogDir, cfg.LogLevel)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.5 {
		t.Errorf("Unexpected audio defaults: %+v", cfg.Audio)
	}
	if cfg.Input.HoldFrames != parameter.DefaultHoldFrames {
		t.Errorf("Expected hold frames %d, got %d", parameter.DefaultHoldFrames, cfg.Input.HoldFrames)
	}
	if cfg.JumpButton() != input.ButtonA {
		t.Errorf("Expected jump on A, got %v", cfg.JumpButton())
	}
	if cfg.Entity.CascadeChild {
		t.Error("Expected cascadeChild off by default")
	}
	if cfg.Replay.DB != "hopper.db" || cfg.Replay.Record != "" || cfg.Replay.Play != "" {
		t.Errorf("Unexpected replay defaults: %+v", cfg.Replay)
	}
	if cfg.Headless.Frames != 0 || cfg.Metrics.Enabled {
		t.Error("Expected headless and metrics off by default")
	}
}

func TestLoad_FileInDir(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"logLevel": "debug",
		"input": { "holdFrames": 4, "jumpButton": "b", "keys": { "c": "A", "x": "none" } },
		"entity": { "cascadeChild": true }
	}`
	if err := os.WriteFile(filepath.Join(dir, "hopper.json"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, _, err := Load("", dir, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected logLevel debug, got %q", cfg.LogLevel)
	}
	if cfg.Input.HoldFrames != 4 {
		t.Errorf("Expected hold frames 4, got %d", cfg.Input.HoldFrames)
	}
	if cfg.JumpButton() != input.ButtonB {
		t.Errorf("Expected jump on B, got %v", cfg.JumpButton())
	}
	if !cfg.Entity.CascadeChild {
		t.Error("Expected cascadeChild from file")
	}
	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable: %v", err)
	}
	if kt.Runes['c'] != input.ButtonA {
		t.Error("Expected c rebound to A")
	}
	if _, ok := kt.Runes['x']; ok {
		t.Error("Expected x unbound")
	}
	// Untouched keys keep defaults
	if !cfg.Audio.Enabled {
		t.Error("Expected audio default to survive partial file")
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), "", nil)
	if err == nil {
		t.Fatal("Expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "error reading config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoad_ExplicitTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := "debug = true\n\n[replay]\nrecord = \"run1\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, _, err := Load(path, "", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug || cfg.Replay.Record != "run1" {
		t.Errorf("Unexpected config: debug=%v record=%q", cfg.Debug, cfg.Replay.Record)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOPPER_AUDIO_ENABLED", "false")
	t.Setenv("HOPPER_HEADLESS_FRAMES", "120")

	cfg, _, err := Load("", t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected env to disable audio")
	}
	if cfg.Headless.Frames != 120 {
		t.Errorf("Expected 120 headless frames, got %d", cfg.Headless.Frames)
	}
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("HOPPER_HEADLESS_FRAMES", "120")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("frames", 0, "")
	fs.Bool("metrics", false, "")
	if err := fs.Parse([]string{"--frames=30"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, _, err := Load("", t.TempDir(), map[string]*pflag.Flag{
		"headless.frames": fs.Lookup("frames"),
		"metrics.enabled": fs.Lookup("metrics"),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Headless.Frames != 30 {
		t.Errorf("Expected flag to win with 30 frames, got %d", cfg.Headless.Frames)
	}
	// Unchanged flag does not shadow the default
	if cfg.Metrics.Enabled {
		t.Error("Expected metrics to stay disabled")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Audio: AudioConfig{Volume: 0.5},
			Input: InputConfig{HoldFrames: 8, JumpButton: "A"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero hold frames", func(c *Config) { c.Input.HoldFrames = 0 }},
		{"volume above one", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"negative frames", func(c *Config) { c.Headless.Frames = -1 }},
		{"unknown jump button", func(c *Config) { c.Input.JumpButton = "turbo" }},
		{"record and play", func(c *Config) { c.Replay.Record, c.Replay.Play = "a", "b" }},
		{"bad key binding", func(c *Config) { c.Input.Keys = map[string]string{"nokey": "A"} }},
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("Expected base config valid, got %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
