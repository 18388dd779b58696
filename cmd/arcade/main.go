// arcade is a terminal Flappy Bird with a menu, a score screen and SSH play.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: flappy)
//	arcade menu              - Start from the main menu
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show best score and recorded runs
//	arcade simulate          - Run the game headless with the autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	defer closeLogFile()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLogFile()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "TUI Flappy - Flappy Bird in your terminal",
	Long: `TUI Flappy is a terminal Flappy Bird: flap through the gaps of an
endless stream of pipes and beat your best score.

Available commands:
  list      - Show all available games
  play      - Start playing right away
  menu      - Start from the main menu
  serve     - Start SSH server for remote play
  scores    - View the best score and recorded runs
  simulate  - Run headless games with the autopilot

Examples:
  arcade play
  arcade menu
  arcade serve --ssh :2222
  arcade scores
  arcade simulate --ticks 36000 --seed 42`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(flagLogLevel, flagLogFile)
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
