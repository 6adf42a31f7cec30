package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSimRuns    int
	flagSimTicks   int
	flagSimNoPilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games with an autopilot",
	Long: `Run games on a virtual clock without a display, steering the bird
with a simple autopilot, and print how each run ended.

Examples:
  flappy sim
  flappy sim --runs 20 --ticks 10000 --seed 7
  flappy sim --no-pilot`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Tick limit per run")
	simCmd.Flags().BoolVar(&flagSimNoPilot, "no-pilot", false, "Never flap")
}

// simResult is the outcome of one headless run.
type simResult struct {
	Score int
	Ticks int
	Died  bool
}

func runSim(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagSimRuns <= 0 || flagSimTicks <= 0 {
		return fmt.Errorf("sim: --runs and --ticks must be positive")
	}

	seed := resolveSeed()
	results, high, err := simulate(cfg, seed, flagSimRuns, flagSimTicks, !flagSimNoPilot, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	deaths := 0
	for i, r := range results {
		status := "survived"
		if r.Died {
			status = "died"
			deaths++
		}
		fmt.Fprintf(out, "run %d: score %d, %d ticks, %s\n", i+1, r.Score, r.Ticks, status)
	}
	fmt.Fprintf(out, "seed %d: %d runs, %d deaths, best %d\n", seed, len(results), deaths, high)
	return nil
}

// simulate plays runs on a virtual clock. Each run lasts until the bird
// dies or maxTicks ticks have passed. It returns the outcome of every run
// and the best score.
func simulate(cfg config.FlappyConfig, seed int64, runs, maxTicks int, pilot bool, logger *log.Logger) ([]simResult, int, error) {
	store := storage.NewMemoryStore()
	clock := loop.NewManual()

	s, err := flappy.NewSession(cfg, seed, flappy.Deps{
		Scheduler: clock,
		Store:     store,
		Runs:      store,
		Logger:    logger,
	})
	if err != nil {
		return nil, 0, err
	}
	ap := flappy.NewAutopilot()

	results := make([]simResult, 0, runs)
	for range runs {
		s.Start()
		for s.Alive() && s.Ticks() < maxTicks && clock.Step() {
			if pilot && ap.ShouldFlap(s.Frame()) {
				s.Flap()
			}
		}
		results = append(results, simResult{Score: s.Score(), Ticks: s.Ticks(), Died: !s.Alive()})
	}
	s.Stop()

	logger.Debug("simulation finished", "runs", len(store.Runs()), "virtual_time", clock.Now())
	return results, s.HighScore(), nil
}
