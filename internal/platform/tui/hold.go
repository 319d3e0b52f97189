package tui

import (
	"time"

	"github.com/vovakirdan/turbine-climb/internal/core"
)

// Default hold windows. Terminals report presses and auto-repeats but never
// releases, so a key is treated as held until its window lapses.
const (
	DefaultInitialHold = 500 * time.Millisecond // Covers the typical auto-repeat delay
	DefaultRepeatHold  = 120 * time.Millisecond // Covers the gap between repeats
)

// HoldTracker turns a stream of key presses into held action states.
type HoldTracker struct {
	initialHold time.Duration
	repeatHold  time.Duration
	until       map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the default hold windows.
func NewHoldTracker() *HoldTracker {
	return NewHoldTrackerWithWindows(DefaultInitialHold, DefaultRepeatHold)
}

// NewHoldTrackerWithWindows creates a tracker with custom hold windows.
func NewHoldTrackerWithWindows(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initialHold: initial,
		repeatHold:  repeat,
		until:       make(map[core.Action]time.Time),
	}
}

// Press records a key press at now. A press while the action is already held
// is an auto-repeat and only extends the hold.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if h.Held(a, now) {
		if next := now.Add(h.repeatHold); next.After(h.until[a]) {
			h.until[a] = next
		}
		return
	}
	h.until[a] = now.Add(h.initialHold)
}

// Release drops an action immediately.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.until, a)
}

// Held reports whether the action is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Frame returns the actions held at now and forgets expired ones.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return frame
}

// Reset drops every held action.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
