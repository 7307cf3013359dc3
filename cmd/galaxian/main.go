// galaxian is a terminal Galaxian-style shooter with an escalating upgrade shop.
//
// Usage:
//
//	galaxian play            - Pick a difficulty and play
//	galaxian replay          - Run a scripted or piloted game headlessly
//	galaxian shop            - Print the upgrade catalog
//	galaxian scores          - Show the run log
//	galaxian serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed (default: today's date)
//	--db <path>     - Set database path (default: ~/.arcade/galaxian.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shop-escalation/internal/replay"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaxian",
	Short: "Galaxian: Shop Escalation - a terminal shoot-'em-up",
	Long: `Galaxian: Shop Escalation is a deterministic shoot-'em-up for the terminal.

Clear 60 waves of a marching formation. Waves come in blocks of five:
each new block brings a faster and denser formation, and
clearing a block opens an intermission shop where credits buy weapon
upgrades, a support drone and timed powers.

Available commands:
  play     - Pick a difficulty and play
  replay   - Run a scripted or piloted game without a terminal
  shop     - Print the upgrade catalog
  scores   - View the run log
  serve    - Start SSH server for remote play

Examples:
  galaxian play
  galaxian play --difficulty hard --seed 42
  galaxian replay --script demo.yaml
  galaxian replay --query "?seed=7&scripted_demo=1" --pilot auto
  galaxian serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = today's date)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/galaxian.db", "Path to run log database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the stderr logger shared by every command.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// resolveSeed maps the zero seed to the daily seed.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return replay.DateSeed(time.Now())
	}
	return seed
}
