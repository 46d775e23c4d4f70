package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/platform/tui"
)

var (
	flagDifficulty string
	flagCustom     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a terminal session with the menu, custom runs, shop and scores.
With --difficulty or --custom the run starts right away.

Controls:
  Mouse click          - Tap
  Arrows/WASD + Space  - Move the cursor and tap
  R                    - Play again (after game over)
  Enter/Esc            - Back to menu (after game over)
  Q/Ctrl+C             - Quit
  Ctrl+S               - Save a text screenshot

Examples:
  rush play
  rush play --difficulty hard
  rush play --custom catch_treats,run_stomp`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start a run right away: casual or hard")
	playCmd.Flags().StringVar(&flagCustom, "custom", "", "Start a custom run with these comma-separated variants")
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, _ []string) error {
	env, err := setup(io.Discard, true)
	if err != nil {
		return err
	}
	defer env.Close()

	width, height := terminalSize()
	opts := tui.SessionOptions{
		Config: env.cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Deps: env.deps,
	}
	if env.store != nil {
		opts.Runs = env.store
	}
	if flagDifficulty != "" || flagCustom != "" {
		run, err := runOptions(flagDifficulty, flagCustom)
		if err != nil {
			return err
		}
		opts.Start = &run
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
