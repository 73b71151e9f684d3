package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"b", runeKey("b"), core.ActionBack},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapsHaveHelp(t *testing.T) {
	for _, b := range DefaultGameKeyMap().ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("game binding %v has no help text", b.Keys())
		}
	}
	for _, b := range DefaultPickerKeyMap().ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("picker binding %v has no help text", b.Keys())
		}
	}
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		rate int
		want int
	}{
		{60, 3},
		{30, 2},
		{120, 6},
		{1, 1},
		{0, 3}, // default rate
	}
	for _, tc := range tests {
		if got := holdTicks(tc.rate); got != tc.want {
			t.Errorf("holdTicks(%d) = %d, expected %d", tc.rate, got, tc.want)
		}
	}
}
