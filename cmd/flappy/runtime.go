package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// gdataAppName names the per-user data directory of the gdata backend.
const gdataAppName = "flappy"

// assetTimeout bounds asset loading at startup.
const assetTimeout = 30 * time.Second

// appRuntime holds everything an interactive frontend needs.
type appRuntime struct {
	cfg     config.FlappyConfig
	seed    int64
	logger  *log.Logger
	bundle  *assets.Bundle
	sounds  flappy.Sounds
	store   flappy.HighScoreStore
	runs    flappy.RunRecorder
	closers []func()
}

// Close releases the store, the audio device and the log file.
func (rt *appRuntime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
}

// newLogger creates a logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the log file for interactive modes, which own the
// terminal. It falls back to discarding output.
func openLogFile() (*log.Logger, func()) {
	path, err := storage.ExpandHome(flagLogFile)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// loadConfig loads the configuration named by --config, or the default search path.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if source == "" {
		source = "embedded"
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// resolveSeed returns --seed, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadBundle loads every asset of the manifest and waits for the
// completion callback.
func loadBundle(cfg config.FlappyConfig) (*assets.Bundle, error) {
	ctx, cancel := context.WithTimeout(context.Background(), assetTimeout)
	defer cancel()

	type result struct {
		bundle *assets.Bundle
		err    error
	}
	done := make(chan result, 1)
	assets.Load(ctx, assets.ManifestFromConfig(cfg.Assets), func(b *assets.Bundle, err error) {
		done <- result{b, err}
	})

	select {
	case r := <-done:
		return r.bundle, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("assets: %w", ctx.Err())
	}
}

// newRuntime prepares config, assets, sound and persistence for a frontend.
// Asset errors are fatal; store and audio errors degrade with a warning.
func newRuntime(logger *log.Logger) (*appRuntime, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}

	bundle, err := loadBundle(cfg)
	if err != nil {
		return nil, err
	}

	rt := &appRuntime{
		cfg:    cfg,
		seed:   resolveSeed(),
		logger: logger,
		bundle: bundle,
	}

	backend, err := storage.OpenBackend(flagStore, flagDBPath, gdataAppName)
	if err != nil {
		logger.Warn("cannot open high score store, scores will not persist", "store", flagStore, "err", err)
		backend = storage.NewMemoryStore()
	}
	rt.store = backend
	if saver, ok := backend.(storage.RunSaver); ok {
		rt.runs = saver
	}
	rt.closers = append(rt.closers, func() {
		if err := backend.Close(); err != nil {
			logger.Warn("cannot close store", "err", err)
		}
	})

	rt.sounds = audio.Silent{}
	if !flagMute && cfg.Audio.Enabled {
		player, err := audio.NewBeepPlayer(bundle.Clips(), cfg.Audio.Volume)
		if err != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		} else {
			rt.sounds = player
			rt.closers = append(rt.closers, player.Close)
		}
	}

	logger.Info("runtime ready", "seed", rt.seed, "store", flagStore, "muted", flagMute || !cfg.Audio.Enabled)
	return rt, nil
}
