// Package tui provides the Bubble Tea integration for the climb platform.
// It handles the terminal UI loop, key hold tracking, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time a single frame may simulate, so a suspended
// terminal does not teleport the climber on resume.
const maxFrameDelta = 250 * time.Millisecond

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

// frameDelta returns the simulated time between two ticks.
// The first tick, clock jumps backwards, and long stalls fall back to sane values.
func frameDelta(prev, now time.Time, fallback time.Duration) time.Duration {
	if prev.IsZero() {
		return fallback
	}
	dt := now.Sub(prev)
	if dt <= 0 {
		return fallback
	}
	return min(dt, maxFrameDelta)
}
