package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shop-escalation/internal/config"
	"github.com/vovakirdan/shop-escalation/internal/games/galaxian"
	"github.com/vovakirdan/shop-escalation/internal/replay"
)

const defaultPilotTicks = 3600

var (
	flagScript     string
	flagQuery      string
	flagPilot      string
	flagTicks      int
	flagAdvanceMS  float64
	flagHashOnly   bool
	flagReplayConf string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a game headlessly and print the final snapshot",
	Long: `Run the simulation without a terminal and print the result as JSON.

Modes:
  --script <file>   Replay a YAML input script (deterministic, with checkpoints)
  --query <string>  Launch from a query string (seed, autostart, scripted_demo, ticks)
                    and let a pilot play it
  --advance-ms <n>  With --query, advance the launched game by n milliseconds
                    of wall time instead of piloting it

Pilots:
  auto  - Steers under the lowest enemy, fires, shops and uses powers
  idle  - Presses nothing

Examples:
  galaxian replay --script demo.yaml
  galaxian replay --query "?seed=7777&autostart=1" --pilot auto --ticks 6000
  galaxian replay --query "scripted_demo=1" --advance-ms 1000
  galaxian replay --script demo.yaml --hash`,
	Args: cobra.NoArgs,
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagScript, "script", "", "Path to a YAML input script")
	replayCmd.Flags().StringVar(&flagQuery, "query", "", "Launch query string")
	replayCmd.Flags().StringVar(&flagPilot, "pilot", "auto", "Pilot for query runs: auto, idle")
	replayCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Tick budget for query runs (overrides ticks= in the query)")
	replayCmd.Flags().Float64Var(&flagAdvanceMS, "advance-ms", 0, "Advance a query run by wall milliseconds")
	replayCmd.Flags().BoolVar(&flagHashOnly, "hash", false, "Print only the final snapshot hash")
	replayCmd.Flags().StringVar(&flagReplayConf, "config", "", "Path to custom game config YAML")
}

func runReplay(_ *cobra.Command, _ []string) {
	logger := newLogger("replay")

	tuning, err := config.LoadGalaxian(flagReplayConf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	runner := replay.NewRunner(tuning, logger)

	var result replay.Result
	switch {
	case flagScript != "":
		script, err := replay.LoadScript(flagScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
			os.Exit(1)
		}
		if result, err = runner.Run(script); err != nil {
			fmt.Fprintf(os.Stderr, "Error running script: %v\n", err)
			os.Exit(1)
		}

	default:
		opts, err := replay.ParseQuery(flagQuery, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if flagAdvanceMS > 0 {
			s := galaxian.NewWithConfig(opts.Seed, tuning)
			if opts.Autostart {
				galaxian.Autostart(s)
			}
			n := replay.AdvanceTime(s, galaxian.Input{}, flagAdvanceMS)
			logger.Debug("Advanced", "ms", flagAdvanceMS, "ticks", n)
			result = replay.Result{Final: galaxian.TakeSnapshot(s), Checkpoints: []replay.Checkpoint{}}
			break
		}

		if flagTicks > 0 {
			opts.Ticks = flagTicks
		}
		if opts.Ticks == 0 {
			opts.Ticks = defaultPilotTicks
		}

		pilot, ok := pilots[flagPilot]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown pilot %q\n", flagPilot)
			os.Exit(1)
		}
		result = runner.RunPilot(opts, pilot)
	}

	if flagHashOnly {
		fmt.Printf("%016x\n", result.Final.Hash())
		return
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

var pilots = map[string]replay.Pilot{
	"auto": replay.AutoPilot,
	"idle": replay.Idle,
}
