// Package config holds the startup settings and binds them to command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"raymarch/pkg/engine/world"
	"raymarch/pkg/game/locale"
)

// Backends
const (
	BackendTcell  = "tcell"
	BackendANSI   = "ansi"
	BackendWindow = "window"
)

// Window size limits in character cells
const (
	MinWindowCols = 20
	MinWindowRows = 10
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full set of startup options.
type Config struct {
	Backend  string
	Layout   string
	FOV      float64 // total field of view in degrees
	MaxSteps int     // 0 uses the larger map dimension
	SpawnX   float64
	SpawnY   float64
	Throttle time.Duration

	LogFile  string
	LogLevel string
	Language string

	// Window backend size in character cells
	WindowCols int
	WindowRows int

	// Developer switches: print and exit without opening a backend
	DumpMap  bool
	ListKeys bool
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		Backend:    BackendTcell,
		Layout:     world.DefaultLayout,
		FOV:        90,
		MaxSteps:   0,
		SpawnX:     5,
		SpawnY:     5,
		// Unthrottled ticks take a few milliseconds, the pacing the
		// gameplay rates are tuned for. A throttle lengthens every tick
		// and so shrinks each turn and step in proportion.
		Throttle:   0,
		LogFile:    "raymarch.log",
		LogLevel:   "info",
		Language:   locale.DefaultLanguage,
		WindowCols: 120,
		WindowRows: 40,
	}
}

// Backends lists the accepted backend names
func Backends() []string {
	return []string{BackendANSI, BackendTcell, BackendWindow}
}

// Bind registers one flag per field on fs, defaulting to the current values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "output backend: "+strings.Join(Backends(), ", "))
	fs.StringVar(&c.Layout, "map", c.Layout, "map layout: "+strings.Join(world.LayoutNames(), ", "))
	fs.Float64Var(&c.FOV, "fov", c.FOV, "total field of view in degrees")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "ray march step cap (0 = larger map dimension)")
	fs.Float64Var(&c.SpawnX, "spawn-x", c.SpawnX, "spawn column")
	fs.Float64Var(&c.SpawnY, "spawn-y", c.SpawnY, "spawn row")
	fs.DurationVar(&c.Throttle, "throttle", c.Throttle, "extra sleep after every frame, e.g. 50ms")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file path")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.Language, "lang", c.Language, "interface language: "+strings.Join(locale.Languages(), ", "))
	fs.IntVar(&c.WindowCols, "cols", c.WindowCols, "window backend width in cells")
	fs.IntVar(&c.WindowRows, "rows", c.WindowRows, "window backend height in cells")
	fs.BoolVar(&c.DumpMap, "dump-map", c.DumpMap, "print the selected map and exit")
	fs.BoolVar(&c.ListKeys, "keys", c.ListKeys, "print the key bindings and exit")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !slices.Contains(Backends(), c.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if !slices.Contains(world.LayoutNames(), c.Layout) {
		return fmt.Errorf("%w: unknown map %q", ErrInvalid, c.Layout)
	}
	if !slices.Contains(locale.Languages(), c.Language) {
		return fmt.Errorf("%w: unknown language %q", ErrInvalid, c.Language)
	}
	if c.FOV <= 0 || c.FOV >= 360 || math.IsNaN(c.FOV) {
		return fmt.Errorf("%w: field of view %.1f outside (0, 360)", ErrInvalid, c.FOV)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: negative max steps %d", ErrInvalid, c.MaxSteps)
	}
	if c.Throttle < 0 {
		return fmt.Errorf("%w: negative throttle %v", ErrInvalid, c.Throttle)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	if c.LogFile == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalid)
	}
	if c.Backend == BackendWindow && (c.WindowCols < MinWindowCols || c.WindowRows < MinWindowRows) {
		return fmt.Errorf("%w: window %dx%d smaller than %dx%d",
			ErrInvalid, c.WindowCols, c.WindowRows, MinWindowCols, MinWindowRows)
	}
	return nil
}

// HalfFOV returns the angular half-width in radians
func (c Config) HalfFOV() float64 {
	return c.FOV / 2 * math.Pi / 180
}
