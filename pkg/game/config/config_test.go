package config

import (
	"errors"
	"flag"
	"math"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestDefault_HalfFOV(t *testing.T) {
	if got := Default().HalfFOV(); math.Abs(got-math.Pi/4) > 1e-12 {
		t.Errorf("HalfFOV() = %v, want π/4", got)
	}
}

func TestBind_ParsesFlags(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("raymarch", flag.ContinueOnError)
	cfg.Bind(fs)

	args := []string{
		"-backend", "ansi", "-map", "pillars", "-fov", "60",
		"-max-steps", "30", "-spawn-x", "2", "-spawn-y", "3.5",
		"-throttle", "50ms", "-lang", "de", "-log", "x.log",
		"-log-level", "debug", "-cols", "80", "-rows", "25",
		"-dump-map",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Config{
		Backend: "ansi", Layout: "pillars", FOV: 60, MaxSteps: 30,
		SpawnX: 2, SpawnY: 3.5, Throttle: 50 * time.Millisecond,
		LogFile: "x.log", LogLevel: "debug", Language: "de",
		WindowCols: 80, WindowRows: 25, DumpMap: true,
	}
	if cfg != want {
		t.Errorf("parsed config = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Backend = "gl" }},
		{"layout", func(c *Config) { c.Layout = "maze" }},
		{"language", func(c *Config) { c.Language = "fr" }},
		{"zero fov", func(c *Config) { c.FOV = 0 }},
		{"full circle fov", func(c *Config) { c.FOV = 360 }},
		{"nan fov", func(c *Config) { c.FOV = math.NaN() }},
		{"negative max steps", func(c *Config) { c.MaxSteps = -1 }},
		{"negative throttle", func(c *Config) { c.Throttle = -time.Millisecond }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"log file", func(c *Config) { c.LogFile = "" }},
		{"tiny window", func(c *Config) { c.Backend = BackendWindow; c.WindowCols = 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidate_WindowSizeIgnoredForTerminals(t *testing.T) {
	cfg := Default()
	cfg.WindowCols, cfg.WindowRows = 1, 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
