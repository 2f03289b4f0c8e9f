package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{"a", runeKey('a'), core.KeyLeft, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{"d", runeKey('d'), core.KeyRight, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{"w", runeKey('w'), core.KeyUp, true},
		{"s", runeKey('s'), core.KeyDown, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, 0, false},
		{"unbound", runeKey('z'), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.GameKey(tc.msg)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Errorf("GameKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	km := DefaultKeyMap()

	if !km.IsQuit(runeKey('q')) {
		t.Error("q should quit")
	}
	if !km.IsQuit(tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("ctrl+c should quit")
	}
	if !km.IsQuit(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Error("esc should quit")
	}
	if km.IsQuit(runeKey('a')) {
		t.Error("a should not quit")
	}
}
