package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// or auto-repeat event. It must cover the terminal's auto-repeat delay
// (typically 250-600ms), otherwise a held key releases once before the
// first repeat arrives.
const DefaultHoldWindow = 500 * time.Millisecond

// KeyState turns terminal key events into held keys. Terminals report
// presses and auto-repeats but no releases, so a key is considered down
// until no event for it arrives within the hold window.
type KeyState struct {
	hold time.Duration
	last [core.KeyCount]time.Time
}

// NewKeyState creates a key state with the given hold window.
// A non-positive window selects DefaultHoldWindow.
func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyState{hold: hold}
}

// Press records a press or auto-repeat of k at now.
func (s *KeyState) Press(k core.Key, now time.Time) {
	if k < 0 || k >= core.KeyCount {
		return
	}
	s.last[k] = now
}

// Down reports whether k counts as held at now.
func (s *KeyState) Down(k core.Key, now time.Time) bool {
	if k < 0 || k >= core.KeyCount || s.last[k].IsZero() {
		return false
	}
	return now.Sub(s.last[k]) < s.hold
}

// Apply writes the held state of every key into the game's key table.
// Releases are only written on a change so edge-triggered keys re-arm once.
func (s *KeyState) Apply(t *core.KeyTable, now time.Time) {
	for k := core.Key(0); k < core.KeyCount; k++ {
		down := s.Down(k, now)
		if down != t.Held(k) {
			t.Set(k, down)
		}
	}
}
