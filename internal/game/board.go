package game

import (
	"fmt"
	"strings"
)

// BoardSize is the single authoritative board dimension. The board is always
// square; there are no separate row/column counts to drift apart.
const BoardSize = 7

// PlayerID identifies one of the two players for the lifetime of a match.
type PlayerID int

const (
	PlayerA PlayerID = iota
	PlayerB
)

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p PlayerID) String() string {
	if p == PlayerA {
		return "A"
	}
	return "B"
}

// CellKind tags the content of one board square.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellDead
	CellOccupied
)

// Cell is one square of the grid. Owner is meaningful only when Kind is
// CellOccupied.
type Cell struct {
	Kind  CellKind
	Owner PlayerID
}

// Board owns the cell grid. Rows and columns are 0-indexed internally; the
// rendered form is 1-indexed for players.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// At returns the cell at (row, col). Callers must pre-validate coordinates;
// out-of-bounds access is a programming error and panics.
func (b *Board) At(row, col int) Cell {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("game: cell access out of bounds: (%d,%d)", row, col))
	}
	return b.cells[row][col]
}

func (b *Board) set(row, col int, c Cell) {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("game: cell write out of bounds: (%d,%d)", row, col))
	}
	b.cells[row][col] = c
}

// Render produces the plain-text grid: 1-indexed column headers, 1-indexed
// row labels, one character per cell. Empty cells render as '+', dead cells
// as 'A', occupied cells as the owning player's symbol.
func (b *Board) Render(symbolA, symbolB rune) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		fmt.Fprintf(&sb, "%d", col+1)
	}
	sb.WriteByte('\n')

	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < BoardSize; col++ {
			switch c := b.cells[row][col]; c.Kind {
			case CellEmpty:
				sb.WriteByte('+')
			case CellDead:
				sb.WriteByte('A')
			case CellOccupied:
				if c.Owner == PlayerA {
					sb.WriteRune(symbolA)
				} else {
					sb.WriteRune(symbolB)
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
