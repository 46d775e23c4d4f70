package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/platform/tui"
	"github.com/vovakirdan/ramadhan-rush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the best runs",
	Long: `Display the best finished runs, optionally for one difficulty, followed
by per-difficulty statistics. Custom runs are never recorded.

Examples:
  rush scores
  rush scores hard
  rush scores --limit 25
  rush scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	difficulty := ""
	if len(args) == 1 {
		id, err := config.ParseProfile(args[0])
		if err != nil {
			return err
		}
		difficulty = string(id)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		width, height := terminalSize()
		return tui.RunScoreboard(store, cfg.Profiles, width, height)
	}

	runs, err := store.TopRuns(difficulty, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rush play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-8s  %-5s  %s\n", "Rank", "Player", "Mode", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-8s  %-5s  %s\n", "----", "------", "----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-7s  %-8d  %-5d  %s\n",
			i+1, r.Profile, r.Difficulty, r.Score, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println()
	for _, k := range keys {
		st := stats[k]
		fmt.Printf("%s: %d runs, best %d, average %.0f, deepest level %d\n",
			k, st.RunsCount, st.HighScore, st.AvgScore, st.BestLevel)
	}
	return nil
}
