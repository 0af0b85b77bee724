// Package tui hosts the game in a terminal with Bubble Tea.
// It owns the loop driver, the input adapter, the HUD and the SSH host.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDT converts the wall time between two ticks to reference frames.
// The first tick (zero previous time) counts as one frame.
func frameDT(prev, now time.Time, referenceMS float64) float64 {
	if prev.IsZero() || referenceMS <= 0 {
		return 1
	}
	elapsed := now.Sub(prev)
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(time.Millisecond) / referenceMS
}
