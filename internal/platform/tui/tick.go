// Package tui provides the Bubble Tea integration for the breakout game.
// It handles the terminal UI loop, input mapping and drawing frames into
// terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameTime is the largest step, in seconds, passed to the game.
const maxFrameTime = 0.05

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameTime returns the seconds between two ticks, clamped to
// [0, maxFrameTime].
func frameTime(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrameTime)
}
