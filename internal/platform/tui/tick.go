// Package tui provides the Bubble Tea integration for skystrike.
// It owns the frame clock, maps terminal input to simulation intents, and
// renders snapshots; the simulation itself never sees the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that emits tick messages at the given
// rate. The tick only drives the game while a model chooses to step it, so a
// paused or finished round simply ignores the clock.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
