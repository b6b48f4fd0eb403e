package game

import "errors"

// ErrBadDirection rejects direction codes outside the numpad compass set.
// Code 5 means "no movement" and is never a legal move.
var ErrBadDirection = errors.New("direction must be 1-9, excluding 5")

// Direction is a numpad compass code. The numbering matches a numeric keypad
// with row 1 at the top of the board, so 2 ("down" on the keypad) moves the
// piece toward higher row numbers.
type Direction int

const (
	DownLeft  Direction = 1
	Down      Direction = 2
	DownRight Direction = 3
	Left      Direction = 4
	Right     Direction = 6
	UpLeft    Direction = 7
	Up        Direction = 8
	UpRight   Direction = 9
)

// ParseDirection validates a keypad code. 5 and anything outside 1-9 fail
// with ErrBadDirection.
func ParseDirection(code int) (Direction, error) {
	if code < 1 || code > 9 || code == 5 {
		return 0, ErrBadDirection
	}
	return Direction(code), nil
}

// Delta returns the (row, col) offset of one step in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DownLeft:
		return 1, -1
	case Down:
		return 1, 0
	case DownRight:
		return 1, 1
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case UpLeft:
		return -1, -1
	case Up:
		return -1, 0
	case UpRight:
		return -1, 1
	}
	panic("game: invalid direction")
}
