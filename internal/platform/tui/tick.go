// Package tui runs Cannon Blast in the terminal with Bubble Tea. It drives a
// session.Session at a fixed tick rate and draws its bodies onto a cell grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the play model to advance the session one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at tickRate per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
