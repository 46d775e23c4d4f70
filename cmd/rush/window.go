package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ramadhan-rush/internal/engine"
	"github.com/vovakirdan/ramadhan-rush/internal/platform/gui"
	"github.com/vovakirdan/ramadhan-rush/internal/render"
)

var (
	flagWindowDifficulty string
	flagWindowCustom     string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a window",
	Long: `Open an 800x600 window and start a run. Click or touch to tap.
On the game-over screen click, R or Enter plays again; Esc or Q closes.

Examples:
  rush window
  rush window --difficulty hard
  rush window --custom serve_tables,match_order`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowDifficulty, "difficulty", "casual", "casual or hard")
	windowCmd.Flags().StringVar(&flagWindowCustom, "custom", "", "Comma-separated variants for a custom run")
}

func runWindow(_ *cobra.Command, _ []string) error {
	env, err := setup(os.Stderr, true)
	if err != nil {
		return err
	}
	defer env.Close()

	opts, err := runOptions(flagWindowDifficulty, flagWindowCustom)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game, err := gui.NewGame(engine.New(env.cfg, env.deps, seed), opts, env.logger)
	if err != nil {
		return err
	}
	return gui.Run(game, render.Title, flagFPS)
}
