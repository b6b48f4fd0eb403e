package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/isola/internal/config"
	"github.com/jask/isola/internal/game"
)

// keyMsg helper for tests
func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestModel() Model {
	cfg := config.Config{
		Players: config.PlayersConfig{One: "B", Two: "W"},
		UI:      config.UIConfig{Legend: true},
	}
	return New(cfg, nil, "test-match")
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func TestWelcomeAnyKeyStartsFirstTurn(t *testing.T) {
	m := newTestModel()
	if m.phase != phaseWelcome {
		t.Fatalf("initial phase = %d, want welcome", m.phase)
	}

	got := press(t, m, "x")
	if got.phase != phaseMove {
		t.Fatalf("phase = %d, want move", got.phase)
	}
	if !strings.Contains(got.status, "Turn: B") {
		t.Fatalf("unexpected status: %q", got.status)
	}
}

func TestMoveRejectsCenterDigit(t *testing.T) {
	m := press(t, newTestModel(), "x")

	got := press(t, m, "5")
	if !got.statusErr {
		t.Fatalf("expected error status, got %q", got.status)
	}
	if got.phase != phaseMove {
		t.Fatalf("phase = %d, want move (re-prompt)", got.phase)
	}
	if p := got.match.Player(game.PlayerA); p.Row != 0 || p.Col != 3 {
		t.Fatalf("player moved to (%d,%d), want untouched (0,3)", p.Row, p.Col)
	}
	if got.match.Board().At(0, 3).Kind != game.CellOccupied {
		t.Fatal("board mutated by rejected input")
	}
}

func TestMoveRejectsNonNumericInput(t *testing.T) {
	m := press(t, newTestModel(), "x")

	for _, k := range []string{"q", "a", " ", "0"} {
		got := press(t, m, k)
		if !got.statusErr {
			t.Fatalf("key %q: expected error status", k)
		}
		if got.phase != phaseMove {
			t.Fatalf("key %q: phase = %d, want move", k, got.phase)
		}
	}
}

func TestMoveOffBoardReprompts(t *testing.T) {
	m := press(t, newTestModel(), "x")

	// Player A starts on the top row; 8 is "up" and leaves the board.
	got := press(t, m, "8")
	if !got.statusErr || !strings.Contains(got.status, "Invalid move") {
		t.Fatalf("unexpected status: %q", got.status)
	}
	if got.phase != phaseMove {
		t.Fatalf("phase = %d, want move", got.phase)
	}
}

func TestFullTurnFlow(t *testing.T) {
	m := press(t, newTestModel(), "x")

	// B moves down.
	got := press(t, m, "2")
	if got.phase != phaseShotRow {
		t.Fatalf("phase after move = %d, want shot row", got.phase)
	}
	if p := got.match.Player(game.PlayerA); p.Row != 1 || p.Col != 3 {
		t.Fatalf("player at (%d,%d), want (1,3)", p.Row, p.Col)
	}
	if got.match.Board().At(0, 3).Kind != game.CellDead {
		t.Fatal("vacated cell should be dead")
	}

	// Shooting the vacated (dead) cell is rejected and restarts from the row.
	got = press(t, got, "1", "4")
	if got.phase != phaseShotRow {
		t.Fatalf("phase after dead-cell shot = %d, want shot row", got.phase)
	}
	if !got.statusErr || !strings.Contains(got.status, "cannot be destroyed") {
		t.Fatalf("unexpected status: %q", got.status)
	}

	// A genuinely empty target works and hands the turn to W.
	got = press(t, got, "1", "1")
	if got.match.Board().At(0, 0).Kind != game.CellDead {
		t.Fatal("shot target should be dead")
	}
	if got.match.Active() != game.PlayerB {
		t.Fatalf("active = %v, want PlayerB", got.match.Active())
	}
	if got.phase != phaseMove {
		t.Fatalf("phase = %d, want move for next player", got.phase)
	}
	if !strings.Contains(got.status, "Turn: W") {
		t.Fatalf("unexpected status: %q", got.status)
	}
}

func TestShotRejectsOutOfRangeDigits(t *testing.T) {
	m := press(t, newTestModel(), "x", "2")
	if m.phase != phaseShotRow {
		t.Fatalf("phase = %d, want shot row", m.phase)
	}

	for _, k := range []string{"0", "8", "9", "z"} {
		got := press(t, m, k)
		if !got.statusErr || !strings.Contains(got.status, "Invalid coordinate") {
			t.Fatalf("key %q: unexpected status %q", k, got.status)
		}
		if got.phase != phaseShotRow {
			t.Fatalf("key %q: phase = %d, want shot row", k, got.phase)
		}
	}

	// Same range check applies to the column input.
	m = press(t, m, "3")
	if m.phase != phaseShotCol {
		t.Fatalf("phase = %d, want shot col", m.phase)
	}
	got := press(t, m, "8")
	if !got.statusErr || got.phase != phaseShotCol {
		t.Fatalf("phase = %d status = %q, want re-prompted column", got.phase, got.status)
	}
}

func TestTrappedPlayerLosesWithoutPrompt(t *testing.T) {
	m := newTestModel()

	// Kill every reachable neighbor of A's start before the first turn.
	for _, c := range [][2]int{{0, 2}, {0, 4}, {1, 2}, {1, 3}, {1, 4}} {
		if err := m.match.Shoot(c[0], c[1]); err != nil {
			t.Fatalf("setup shot (%d,%d): %v", c[0], c[1], err)
		}
	}

	got := press(t, m, "x")
	if got.phase != phaseOver {
		t.Fatalf("phase = %d, want over (no move prompt for a trapped player)", got.phase)
	}
	if got.loser != game.PlayerA {
		t.Fatalf("loser = %v, want PlayerA", got.loser)
	}
	if !strings.Contains(got.status, "W is the winner!") {
		t.Fatalf("unexpected status: %q", got.status)
	}
}

func TestGameOverAnyKeyQuits(t *testing.T) {
	m := newTestModel()
	m.phase = phaseOver
	m.loser = game.PlayerB

	next, cmd := m.Update(keyMsg("x"))
	got := next.(Model)
	if !got.quitting {
		t.Fatal("expected quitting after final keypress")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestCtrlCQuitsInAnyPhase(t *testing.T) {
	for _, ph := range []phase{phaseWelcome, phaseMove, phaseShotRow, phaseShotCol, phaseOver} {
		m := newTestModel()
		m.phase = ph

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		got := next.(Model)
		if !got.quitting || cmd == nil {
			t.Fatalf("phase %d: ctrl+c should quit", ph)
		}
	}
}

func TestWindowSizeUpdates(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := next.(Model)
	if got.width != 120 || got.height != 40 {
		t.Fatalf("size = %dx%d, want 120x40", got.width, got.height)
	}
}
