package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"chosenoffset.com/undertow/internal/audio"
	"chosenoffset.com/undertow/internal/config"
	"chosenoffset.com/undertow/internal/game"
	"chosenoffset.com/undertow/internal/logging"
	ebitenrender "chosenoffset.com/undertow/internal/render/ebiten"
	"chosenoffset.com/undertow/internal/telemetry"
	"chosenoffset.com/undertow/internal/ui/menu"
	"chosenoffset.com/undertow/internal/world/level"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "undertow:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "undertow.yaml", "path to the config file")
	levelPath := flag.String("level", "", "start this level file directly, skipping the menu")
	logLevel := flag.String("log-level", "", "override log.level (DEBUG, INFO, WARN, ERROR)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *levelPath != "" {
		cfg.Level.Path = *levelPath
	}

	var logFile io.Writer
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logFile = f
	}
	log := logging.New(os.Stderr, logFile, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	w, h := cfg.Window.Width, cfg.Window.Height
	manager := game.NewManager(renderer, inputMgr, game.Settings{
		Tuning:   cfg.Tuning,
		TickRate: cfg.Sim.TickRate,
		MaxSteps: cfg.Sim.MaxSteps,
		Seed:     cfg.Sim.Seed,
	}, w, h, log)

	if cfg.Audio.Enabled {
		manager.Audio = audio.New(cfg.Audio.Volume, log)
	} else {
		manager.Audio = audio.Disabled(log)
	}

	if cfg.Telemetry.Enabled {
		srv := telemetry.NewServer(log)
		manager.Telemetry = srv
		go func() {
			if err := srv.ListenAndServe(ctx, cfg.Telemetry.Addr); err != nil {
				log.Error().Err(err).Msg("telemetry server stopped")
			}
		}()
	}

	levels, err := level.ScanDirectory(cfg.Level.Dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", cfg.Level.Dir).Msg("no level directory, only the built-in level is available")
	}
	log.Info().Int("levels", len(levels)).Msg("scanned level directory")
	manager.SetMainMenu(menu.NewMainMenu(levels, renderer, inputMgr, w, h))

	if cfg.Level.Path != "" {
		if err := manager.LoadGame(menu.Selection{Path: cfg.Level.Path}); err != nil {
			return err
		}
	}

	engine.SetWindowSize(w, h)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	logStart(log, cfg)
	if err := engine.RunGame(manager); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	log.Info().Msg("shutting down")
	return nil
}

func logStart(log zerolog.Logger, cfg *config.Config) {
	log.Info().
		Int("tick_rate", cfg.Sim.TickRate).
		Bool("audio", cfg.Audio.Enabled).
		Bool("telemetry", cfg.Telemetry.Enabled).
		Str("level", cfg.Level.Path).
		Msg("starting undertow")
}
