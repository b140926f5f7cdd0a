package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"raymarch/pkg/engine/input"
	"raymarch/pkg/engine/terminal"
	"raymarch/pkg/engine/window"
	"raymarch/pkg/game/config"
	"raymarch/pkg/game/devtools"
	"raymarch/pkg/game/gameplay"
	"raymarch/pkg/game/locale"
	"raymarch/pkg/game/loop"
	"raymarch/pkg/game/raycast"
	"raymarch/pkg/game/renderer"
	"raymarch/pkg/game/state"
	"raymarch/pkg/logger"
)

// device is a terminal backend that also delivers keys
type device interface {
	terminal.Backend
	input.Source
}

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "raymarch: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.ListKeys {
		return devtools.WriteBindings(os.Stdout)
	}

	log, closeLog, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("starting",
		zap.String("backend", cfg.Backend), zap.String("map", cfg.Layout),
		zap.Float64("fov", cfg.FOV), zap.String("lang", cfg.Language))

	po, err := locale.Load(cfg.Language)
	if err != nil {
		return err
	}

	g, err := gameplay.BuildGame(cfg.Layout, state.Vec2{X: cfg.SpawnX, Y: cfg.SpawnY})
	if err != nil {
		return err
	}
	if cfg.DumpMap {
		return devtools.DumpMap(os.Stdout, g, cfg.Layout)
	}

	caster, err := raycast.NewCaster(g.Grid, cfg.HalfFOV(), cfg.MaxSteps)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		Game:     g,
		Caster:   caster,
		Renderer: renderer.New(po),
		Logger:   log,
		Throttle: cfg.Throttle,
	}

	if cfg.Backend == config.BackendWindow {
		err = runWindow(ctx, cfg, opts)
	} else {
		err = runTerminal(ctx, cfg, opts, log)
	}
	if err != nil {
		log.Error("exit with error", zap.Error(err))
		return err
	}
	log.Info("exit")
	return nil
}

func openDevice(backend string) (device, error) {
	switch backend {
	case config.BackendANSI:
		return terminal.OpenANSI()
	case config.BackendTcell:
		return terminal.OpenTcell()
	}
	return nil, fmt.Errorf("%w: no terminal backend %q", config.ErrInvalid, backend)
}

func runTerminal(ctx context.Context, cfg config.Config, opts loop.Options, log *zap.Logger) error {
	dev, err := openDevice(cfg.Backend)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	if cols, rows, err := dev.Size(); err == nil {
		log.Info("terminal opened", zap.Int("cols", cols), zap.Int("rows", rows))
	}
	dev.Clear()
	dev.HideCursor()

	opts.Surface = dev
	opts.Source = dev
	l, err := loop.New(opts)
	if err != nil {
		return errors.Join(err, dev.Close())
	}

	runErr := l.Run(ctx)
	if closeErr := dev.Close(); closeErr != nil {
		return errors.Join(runErr, fmt.Errorf("restore terminal: %w", closeErr))
	}
	return runErr
}

func runWindow(ctx context.Context, cfg config.Config, opts loop.Options) error {
	w, err := window.New(cfg.WindowCols, cfg.WindowRows, "raymarch")
	if err != nil {
		return fmt.Errorf("open window backend: %w", err)
	}

	opts.Surface = w
	opts.Source = w
	l, err := loop.New(opts)
	if err != nil {
		return err
	}
	return w.Run(ctx, l)
}
