package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return mm, cmd
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(testConfig())
	view := m.View()

	for _, want := range []string{"fake_a", "Fake fake_b", "Select a variant"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view should contain %q", want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testConfig())

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != "fake_b" {
		t.Errorf("Selected() = %q, expected fake_b", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should end the picker")
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(testConfig())

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != "fake_a" {
		t.Errorf("up at the top should stay on the first row, got %q", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(testConfig())
	m, cmd := updateMenu(t, m, runeKey("q"))

	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the picker")
	}
	if m.Selected() != "" {
		t.Error("quitting should not select anything")
	}
}

func TestMenuResizeKeepsCursor(t *testing.T) {
	m := NewMenuModel(testConfig())
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Config().ScreenW != 120 || m.Config().ScreenH != 40 {
		t.Errorf("config should follow the window, got %+v", m.Config())
	}
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != "fake_b" {
		t.Errorf("cursor should survive a resize, got %q", m.Selected())
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	s := NewSessionModel(testConfig(), &soundRecorder{}, nil)

	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T, expected SessionModel", next)
		}
		s = sm
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.gameModel == nil {
		t.Fatal("selecting a variant should start a game")
	}
	if !strings.Contains(s.View(), "fake_a") {
		t.Error("session should show the game view")
	}

	step(TickMsg{})
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.gameModel != nil {
		t.Fatal("back should return to the picker")
	}
	if !strings.Contains(s.View(), "Select a variant") {
		t.Error("session should show the picker again")
	}

	cmd := step(runeKey("q"))
	if !s.quitting || cmd == nil {
		t.Error("q in the picker should end the session")
	}
}
