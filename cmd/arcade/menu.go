package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade from the main menu",
	Long: `Start the arcade on the main menu.

Entries:
  Play   - Start a game
  Score  - Best score and recorded runs
  Exit   - Quit

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSession(tui.TargetMainMenu)
	},
}
