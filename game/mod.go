package game

import "github.com/pkg/errors"

const Size = 8

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrBadCoordinates = errors.New("coordinates out of range")
	ErrBadBoard       = errors.New("malformed board")
)

// Side is one of the two players. The zero value marks an empty cell.
type Side int8

const (
	Empty Side = iota
	Black      // moves first
	White
)

func (s Side) Opponent() Side {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (s Side) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// ParseSide accepts "black"/"b" and "white"/"w".
func ParseSide(s string) (Side, error) {
	switch s {
	case "black", "b", "B":
		return Black, nil
	case "white", "w", "W":
		return White, nil
	}
	return Empty, errors.Errorf("unknown side %q", s)
}

// Board is everything the search needs from a game position.
// Copy must return a board that shares no state with the receiver.
type Board interface {
	CheckMove(m Move, side Side) bool
	DoMove(m Move, side Side)
	Copy() Board
	Count(side Side) int
	CountCorners(side Side) int
	IsDone() bool
}

// Evaluates a board from forSide's perspective against againstSide.
// Implementations must satisfy e(b, A, B) == -e(b, B, A).
type Evaluate func(b Board, forSide, againstSide Side) int
