// flappy is a Flappy Bird clone for the terminal and the desktop.
//
// Usage:
//
//	flappy play          - Play in the terminal
//	flappy desktop       - Play in a window
//	flappy scores        - Show the run history
//	flappy sim           - Run headless games with an autopilot
//	flappy config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Simulation tick rate (default: from config, 60)
//	--seed <value>    - RNG seed for reproducible gameplay
//	--db <path>       - Database path (default: ~/.flappy/scores.db)
//	--store <kind>    - High score backend: sqlite, gdata or memory
//	--config <path>   - Custom configuration YAML
//	--log-file <path> - Log file for interactive modes
//	--mute            - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagStore   string
	flagConfig  string
	flagLogFile string
	flagMute    bool
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide the bird through the pipes",
	Long: `Flappy is a side-scrolling game: the bird falls under gravity, every
flap kicks it upward, and each pipe pair it passes scores a point.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a window
  scores   - View the run history
  sim      - Run headless games with an autopilot
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --fps 30 --seed 42
  flappy desktop --store gdata
  flappy scores --plain
  flappy sim --runs 10 --ticks 5000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "High score backend: sqlite, gdata, memory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Log file for interactive modes")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
