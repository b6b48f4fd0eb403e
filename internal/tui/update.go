package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/isola/internal/game"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.phase {
		case phaseWelcome:
			return m.beginTurn(), nil
		case phaseMove:
			return m.updateMove(msg)
		case phaseShotRow, phaseShotCol:
			return m.updateShot(msg)
		case phaseOver:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// beginTurn runs the start-of-turn legal-move check before any input is
// requested. A trapped player forfeits the whole turn and loses on the spot.
func (m Model) beginTurn() Model {
	active := m.match.Active()
	if !m.match.HasLegalMove(active) {
		m.loser = active
		m.phase = phaseOver
		winner := m.match.Player(active.Opponent())
		m.setStatus(fmt.Sprintf("%s is no longer able to move. %s is the winner! Press any key to exit.",
			string(m.match.Player(active).Symbol), string(winner.Symbol)))
		m.logger.Info("match over",
			"loser", active.String(),
			"winner", active.Opponent().String(),
			"turns", m.turn,
		)
		return m
	}
	m.phase = phaseMove
	m.setStatus(fmt.Sprintf("Turn: %s. Use the number pad to move in a direction 1-9, but not 5.", m.activeSymbol()))
	return m
}

func (m Model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	code, ok := keyDigit(msg)
	if !ok {
		m.setError("Invalid input! Use the number pad to move in a direction 1-9, but not 5.")
		return m, nil
	}
	dir, err := game.ParseDirection(code)
	if err != nil {
		m.setError("Invalid input! Use the number pad to move in a direction 1-9, but not 5.")
		return m, nil
	}

	if err := m.match.Move(dir); err != nil {
		switch {
		case errors.Is(err, game.ErrOutOfBounds):
			m.setError("Invalid move, please try again.")
		case errors.Is(err, game.ErrDeadSpace):
			m.setError("That space is dead, please try again.")
		case errors.Is(err, game.ErrOccupied):
			m.setError("That space is occupied by the opponent, please try again.")
		default:
			m.setError(err.Error())
		}
		return m, nil
	}

	p := m.match.Player(m.match.Active())
	m.logger.Info("move applied",
		"turn", m.turn,
		"player", m.match.Active().String(),
		"direction", code,
		"row", p.Row+1,
		"col", p.Col+1,
	)
	m.phase = phaseShotRow
	m.setStatus(fmt.Sprintf("Valid move. %s, time to fire an arrow! Select a row (1-7):", m.activeSymbol()))
	return m, nil
}

func (m Model) updateShot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	coord, ok := keyDigit(msg)
	if !ok || coord < 1 || coord > game.BoardSize {
		m.setError("Invalid coordinate!")
		return m, nil
	}

	if m.phase == phaseShotRow {
		m.shotRow = coord - 1
		m.phase = phaseShotCol
		m.setStatus("Select a column (1-7):")
		return m, nil
	}

	if err := m.match.Shoot(m.shotRow, coord-1); err != nil {
		// Non-empty target restarts the shot from the row prompt.
		m.phase = phaseShotRow
		m.setError("That location cannot be destroyed. Select a row (1-7):")
		return m, nil
	}
	m.logger.Info("arrow fired",
		"turn", m.turn,
		"player", m.match.Active().String(),
		"row", m.shotRow+1,
		"col", coord,
	)
	m.match.EndTurn()
	m.turn++
	return m.beginTurn(), nil
}

// keyDigit extracts a single decimal digit from a key press.
func keyDigit(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}
