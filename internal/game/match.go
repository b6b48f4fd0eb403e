package game

import "errors"

var (
	ErrOutOfBounds = errors.New("destination is off the board")
	ErrDeadSpace   = errors.New("that space is dead")
	ErrOccupied    = errors.New("that space is occupied by the opponent")
	ErrNotEmpty    = errors.New("that location cannot be destroyed")
)

// Player is one side's piece: its display symbol and current position.
// Identity never changes; the position mutates every turn.
type Player struct {
	Symbol rune
	Row    int
	Col    int
}

// Match is the full state of one game: the board, both players and whose
// turn it is. The zero value is not usable; construct with NewMatch.
type Match struct {
	board   Board
	players [2]Player
	active  PlayerID
}

// NewMatch places player A at (0,3) and player B at (6,3) on an otherwise
// empty board. Player A moves first.
func NewMatch(symbolA, symbolB rune) *Match {
	m := &Match{
		players: [2]Player{
			{Symbol: symbolA, Row: 0, Col: 3},
			{Symbol: symbolB, Row: BoardSize - 1, Col: 3},
		},
		active: PlayerA,
	}
	for i, p := range m.players {
		m.board.set(p.Row, p.Col, Cell{Kind: CellOccupied, Owner: PlayerID(i)})
	}
	return m
}

// Active returns whose turn is being processed.
func (m *Match) Active() PlayerID { return m.active }

// Player returns the current record for the given player.
func (m *Match) Player(id PlayerID) Player { return m.players[id] }

// Board exposes the grid for rendering and inspection.
func (m *Match) Board() *Board { return &m.board }

// RenderBoard renders the grid with both players' symbols filled in.
func (m *Match) RenderBoard() string {
	return m.board.Render(m.players[PlayerA].Symbol, m.players[PlayerB].Symbol)
}

// HasLegalMove reports whether at least one of the eight neighboring cells
// is empty. A player with no legal move at the start of their turn has lost.
func (m *Match) HasLegalMove(id PlayerID) bool {
	p := m.players[id]
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			row, col := p.Row+dRow, p.Col+dCol
			if InBounds(row, col) && m.board.At(row, col).Kind == CellEmpty {
				return true
			}
		}
	}
	return false
}

// Move steps the active player one cell in the given direction. On success
// the origin cell becomes dead space and the destination becomes occupied.
// The match state is untouched when an error is returned.
func (m *Match) Move(d Direction) error {
	p := &m.players[m.active]
	dRow, dCol := d.Delta()
	row, col := p.Row+dRow, p.Col+dCol

	if !InBounds(row, col) {
		return ErrOutOfBounds
	}
	switch m.board.At(row, col).Kind {
	case CellDead:
		return ErrDeadSpace
	case CellOccupied:
		return ErrOccupied
	}

	m.board.set(p.Row, p.Col, Cell{Kind: CellDead})
	p.Row, p.Col = row, col
	m.board.set(row, col, Cell{Kind: CellOccupied, Owner: m.active})
	return nil
}

// Shoot removes an empty cell from play for the rest of the game.
// Coordinates are 0-indexed; callers convert from the 1-indexed UI form.
func (m *Match) Shoot(row, col int) error {
	if !InBounds(row, col) {
		return ErrOutOfBounds
	}
	if m.board.At(row, col).Kind != CellEmpty {
		return ErrNotEmpty
	}
	m.board.set(row, col, Cell{Kind: CellDead})
	return nil
}

// EndTurn hands the turn to the other player. Alternation is strict; nothing
// about the board influences whose turn comes next.
func (m *Match) EndTurn() {
	m.active = m.active.Opponent()
}
