package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a window",
	Long: `Start a game in a desktop window.

Controls:
  Space/Up/W         - Flap
  Click/touch        - Flap (or press the restart button)
  R/Enter            - Restart (after game over)
  Q/Esc              - Quit

Examples:
  flappy desktop
  flappy desktop --store gdata`,
	Args: cobra.NoArgs,
	RunE: runDesktop,
}

func runDesktop(cmd *cobra.Command, args []string) error {
	logger, closeLog := openLogFile()
	defer closeLog()

	rt, err := newRuntime(logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	err = desktop.Run(desktop.Options{
		Config:   rt.cfg,
		Seed:     rt.seed,
		TickRate: flagFPS,
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
