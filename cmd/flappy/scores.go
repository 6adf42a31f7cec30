package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the recorded runs from the scores database.

In a terminal the history opens as an interactive table; with --plain, or
when output is not a terminal, the best runs are printed as text.

Examples:
  flappy scores
  flappy scores --plain --limit 5
  flappy scores --plain --recent
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text listing")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the high score is kept)")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearRuns()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d runs.\n", n)
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunHistory(store, width, height)
	}

	return printRuns(cmd.OutOrStdout(), store, flagLimit, flagRecent)
}

// printRuns writes a plain text listing of runs and the stored high score.
func printRuns(w io.Writer, store *storage.Store, limit int, recent bool) error {
	var runs []storage.Run
	var err error
	title := "Best Runs"
	if recent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(limit)
	} else {
		runs, err = store.TopRuns(limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-8d  %s\n", i+1, r.Score, r.Ticks, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if stats, err := store.Stats(); err == nil {
		fmt.Fprintf(w, "Runs: %d  Average: %.1f\n", stats.Runs, stats.AvgScore)
	}
	if high, err := store.HighScore(); err == nil {
		fmt.Fprintf(w, "High score: %d\n", high)
	}
	return nil
}
