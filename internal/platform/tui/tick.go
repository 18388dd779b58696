// Package tui provides the Bubble Tea frontend for the arcade.
// It handles the terminal UI loop, input mapping, menus and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game the tick loop belongs to, so a loop left over
// from a previous game cannot drive the next one.
type TickMsg struct {
	At  time.Time
	Gen int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
