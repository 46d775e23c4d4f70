// rush is a Ramadhan-themed arcade of nine short minigames strung into
// one escalating run.
//
// Usage:
//
//	rush play               - Play in the terminal (menu, shop, scores)
//	rush window             - Play in a window with mouse or touch
//	rush serve              - Start SSH server for remote play
//	rush scores [difficulty] - Show the best runs
//	rush shop               - List, buy and equip shop items
//	rush variants           - List the minigames
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.rush/rush.db)
//	--config <path>        - Use a custom rush.yaml
//	--profile <name>       - Save profile (default: $USER)
//	--save-backend <kind>  - sqlite or gdata
//	--log-file <path>      - Write debug logs to a file
//	--mute                 - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/all"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagProfile     string
	flagSaveBackend string
	flagLogFile     string
	flagMute        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rush",
	Short: "Ramadhan Rush - nine tiny minigames, one escalating run",
	Long: `Ramadhan Rush strings nine short tap minigames into one run.
Every round raises the difficulty; lose all your lives and the run is over.
Your score is banked for the shop between runs.

Available commands:
  play      - Play in the terminal
  window    - Play in a window
  serve     - Start SSH server for remote play
  scores    - View the best runs
  shop      - Spend banked score
  variants  - List the minigames

Examples:
  rush play
  rush play --difficulty hard
  rush play --custom catch_treats,form_rows
  rush window
  rush serve --ssh :2222 --http :8080
  rush scores casual`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rush/rush.db", "Path to saves and runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rush.yaml")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", defaultProfile(), "Save profile name")
	rootCmd.PersistentFlags().StringVar(&flagSaveBackend, "save-backend", backendSQLite, "Where the save lives: sqlite or gdata")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shopCmd)
}

func defaultProfile() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
