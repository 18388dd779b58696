package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing right away. Exit from the pause menu leads to the
main menu.

Controls:
  Space/Up/Click  - Flap
  P/Esc           - Pause (menu: Continue, Exit)
  R               - Restart immediately after game over
  Ctrl+S          - Screenshot to ~/.arcade/screenshots and the clipboard
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start on the easy tier
  normal - Start on the normal tier
  hard   - Start on the hard tier (default)
  fixed  - Never change tier during a run

Examples:
  arcade play
  arcade play flappy --difficulty easy
  arcade play --difficulty fixed --seed 42
  arcade play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		gameID := tui.GameID
		if len(args) == 1 {
			gameID = args[0]
		}
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
		}
		return runSession(tui.TargetGame)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// configureGame applies the game flags and returns the opened store, or nil
// when the database is unavailable and best scores stay in memory.
func configureGame() (*storage.Store, error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return nil, err
	}
	if flagConfig != "" {
		if _, err := config.LoadFlappy(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		}
	}

	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)
	flappy.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		flappy.SetStore(storage.NewMemoryKV())
		return nil, nil
	}
	flappy.SetStore(store)
	return store, nil
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runSession(start tui.MenuTarget) error {
	store, err := configureGame()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(store, terminalConfig(), start, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
