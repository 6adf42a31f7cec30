package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W   - Flap
  Mouse click  - Flap (or press the restart button)
  R/Enter      - Restart (after game over)
  ?            - More keys
  Q/Esc        - Quit

Examples:
  flappy play
  flappy play --fps 30
  flappy play --seed 42 --mute
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog := openLogFile()
	defer closeLog()

	rt, err := newRuntime(logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = tui.Run(tui.Options{
		Config:   rt.cfg,
		Seed:     rt.seed,
		TickRate: flagFPS,
		Runtime:  core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: rt.seed},
		Bundle:   rt.bundle,
		Sounds:   rt.sounds,
		Store:    rt.store,
		Runs:     rt.runs,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
