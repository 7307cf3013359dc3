package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shop-escalation/internal/config"
	"github.com/vovakirdan/shop-escalation/internal/core"
	"github.com/vovakirdan/shop-escalation/internal/games/galaxian"
	"github.com/vovakirdan/shop-escalation/internal/platform/tui"
	"github.com/vovakirdan/shop-escalation/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Galaxian",
	Long: `Start the game. Without --difficulty a menu lets you pick a preset
or browse the run log.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  Enter            - Start / leave the shop
  1-9              - Buy shop item (intermission)
  E                - Activate Infinite Lives
  Q                - Activate Double XP
  P                - Pause
  R                - Restart
  Esc/B            - Back to menu (paused or finished)
  Ctrl+S           - Save screenshot
  Ctrl+C           - Quit

Difficulty options:
  easy   - 5 lives, 300 starting credits
  normal - 3 lives, no starting credits
  hard   - 2 lives, no starting credits

Examples:
  galaxian play
  galaxian play --difficulty hard
  galaxian play --config ./my-galaxian.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (menu if empty)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("play")

	tuning, err := config.LoadGalaxian(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	// Open run log (continue without it on failure)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run log unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(flagSeed),
	}

	// Direct play skips the menu
	if preset != "" {
		if _, err := playOnce(tuning, preset, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		backToMenu, err := playOnce(tuning, menuResult.Preset, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		if !backToMenu {
			break
		}
	}
}

// playOnce runs a single game session with the preset applied to a copy of tuning.
func playOnce(tuning config.GalaxianConfig, preset config.DifficultyPreset, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	config.ApplyGalaxianPreset(&tuning, preset)
	game := galaxian.NewGame(tuning)
	return tui.Run(game, store, newLogger("galaxian"), cfg)
}
