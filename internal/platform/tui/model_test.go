package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayefimov/termsnake/internal/board"
	"github.com/ayefimov/termsnake/internal/config"
	"github.com/ayefimov/termsnake/internal/core"
	"github.com/ayefimov/termsnake/internal/games/snake"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestKeyMapBindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg(tea.Key{Type: tea.KeyUp}), core.ActionUp},
		{keyRunes("w"), core.ActionUp},
		{keyRunes("k"), core.ActionUp},
		{tea.KeyMsg(tea.Key{Type: tea.KeyDown}), core.ActionDown},
		{keyRunes("j"), core.ActionDown},
		{tea.KeyMsg(tea.Key{Type: tea.KeyLeft}), core.ActionLeft},
		{keyRunes("a"), core.ActionLeft},
		{keyRunes("h"), core.ActionLeft},
		{tea.KeyMsg(tea.Key{Type: tea.KeyRight}), core.ActionRight},
		{keyRunes("d"), core.ActionRight},
		{keyRunes("l"), core.ActionRight},
		{keyRunes("r"), core.ActionRestart},
		{keyRunes("q"), core.ActionQuit},
		{tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}), core.ActionQuit},
		{keyRunes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.Map(tc.msg); got != tc.expected {
			t.Errorf("Map(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func newTestModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	g, err := snake.New(config.Config{Board: config.BoardConfig{Width: 10, Height: 10}})
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1})
	return m, g
}

func TestKeyPressAdvancesOneStep(t *testing.T) {
	m, g := newTestModel(t)

	next, _ := m.Update(keyRunes("d"))
	m = next.(Model)

	if want := (board.Point{Row: 5, Col: 6}); g.Snapshot().Head != want {
		t.Errorf("head = %v, want %v", g.Snapshot().Head, want)
	}

	// Unbound keys do not step the game.
	before := g.Snapshot()
	next, _ = m.Update(keyRunes("x"))
	if _, ok := next.(Model); !ok {
		t.Fatal("Update should return a Model")
	}
	if g.Snapshot() != before {
		t.Error("unbound key should not advance the game")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(keyRunes("q"))
	m = next.(Model)

	if cmd == nil {
		t.Fatal("quit key should produce a command")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestRestartIgnoredMidRound(t *testing.T) {
	m, g := newTestModel(t)
	before := g.Snapshot()

	m.Update(keyRunes("r"))

	if g.Snapshot() != before {
		t.Error("restart should be ignored while the round is running")
	}
}

func TestResizeRestartsRound(t *testing.T) {
	m, g := newTestModel(t)

	next, _ := m.Update(keyRunes("d"))
	m = next.(Model)
	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(Model)

	if want := (board.Point{Row: 5, Col: 5}); g.Snapshot().Head != want {
		t.Errorf("head after resize = %v, want round restarted at %v", g.Snapshot().Head, want)
	}
	if !strings.Contains(m.View(), "Snake") {
		t.Error("view should contain the title after resize")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "abcde")
	s.SetCell(0, 1, 'x', core.ColorGreen)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "abcde") {
		t.Errorf("first line = %q, want it to contain \"abcde\"", lines[0])
	}
	if !strings.Contains(out, "x") {
		t.Error("colored cell rune should survive rendering")
	}
}
