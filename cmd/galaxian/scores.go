package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shop-escalation/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run log",
	Long: `Display the best recorded runs and overall statistics.

Examples:
  galaxian scores
  galaxian scores --limit 25
  galaxian scores --run 3f0c6a52-...   # Show one run in full
  galaxian scores --clear              # Delete every logged run`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its id")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run log")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("Run log cleared.")
		return
	case flagScoresRun != "":
		showRun(store, flagScoresRun)
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Top Runs - Galaxian: Shop Escalation")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'galaxian play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-9s  %-16s  %s\n", "Rank", "Score", "Wave", "Outcome", "Seed", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-9s  %-16s  %s\n", "----", "-----", "----", "-------", "----", "----", "---")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-9s  %-9d  %-16s  %s\n", i+1, run.Score, run.Wave, run.Outcome, run.Seed, dateStr, run.RunID)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Victories: %d  Best: %d  Best wave: %d  Avg: %.0f\n",
		stats.Runs, stats.Victories, stats.HighScore, stats.BestWave, stats.AvgScore)
}

// showRun prints every recorded field of one run.
func showRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		return
	}
	if run == nil {
		fmt.Printf("No run with id %q.\n", runID)
		return
	}

	fmt.Printf("Run %s\n", run.RunID)
	fmt.Println()
	fmt.Printf("  Outcome:  %s\n", run.Outcome)
	fmt.Printf("  Score:    %d\n", run.Score)
	fmt.Printf("  Wave:     %d (block %d)\n", run.Wave, run.Block+1)
	fmt.Printf("  Ticks:    %d\n", run.Ticks)
	fmt.Printf("  Seed:     %d\n", run.Seed)
	fmt.Printf("  Played:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Printf("Replay the seed with: galaxian play --seed %d\n", run.Seed)
}
