package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Directions for walking lines from a placed disc
var directions = []struct{ dx, dy int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var corners = []Move{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

// GameBoard is an 8x8 Othello board. It is a plain value: copying the
// struct copies the position.
type GameBoard struct {
	cells [Size * Size]Side
}

// NewBoard returns the standard opening position.
func NewBoard() *GameBoard {
	b := &GameBoard{}
	mid := Size / 2
	b.set(mid-1, mid-1, White)
	b.set(mid, mid, White)
	b.set(mid-1, mid, Black)
	b.set(mid, mid-1, Black)
	return b
}

// ParseBoard builds a board from Size rows of Size characters. Row i is
// y == i and column j is x == j; '.' is empty, 'B' black and 'W' white.
func ParseBoard(rows ...string) (*GameBoard, error) {
	if len(rows) != Size {
		return nil, errors.Wrapf(ErrBadBoard, "want %d rows, got %d", Size, len(rows))
	}
	b := &GameBoard{}
	for y, row := range rows {
		if len(row) != Size {
			return nil, errors.Wrapf(ErrBadBoard, "row %d has %d cells", y, len(row))
		}
		for x, c := range row {
			switch c {
			case '.':
			case 'B', 'b', 'X', 'x':
				b.set(x, y, Black)
			case 'W', 'w', 'O', 'o':
				b.set(x, y, White)
			default:
				return nil, errors.Wrapf(ErrBadBoard, "unexpected %q at (%d,%d)", c, x, y)
			}
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed positions known to be valid.
func MustParseBoard(rows ...string) *GameBoard {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *GameBoard) get(x, y int) Side {
	return b.cells[x+Size*y]
}

func (b *GameBoard) set(x, y int, s Side) {
	b.cells[x+Size*y] = s
}

// At returns the occupant of a cell, or Empty when out of range.
func (b *GameBoard) At(m Move) Side {
	if !m.InBounds() {
		return Empty
	}
	return b.get(m.X, m.Y)
}

// flanks reports how many opposing discs a disc of side at (x,y) would
// bracket along (dx,dy).
func (b *GameBoard) flanks(x, y, dx, dy int, side Side) int {
	other := side.Opponent()
	n := 0
	x, y = x+dx, y+dy
	for x >= 0 && x < Size && y >= 0 && y < Size {
		switch b.get(x, y) {
		case other:
			n++
		case side:
			return n
		default:
			return 0
		}
		x, y = x+dx, y+dy
	}
	return 0
}

func (b *GameBoard) CheckMove(m Move, side Side) bool {
	if side != Black && side != White {
		return false
	}
	if !m.InBounds() || b.get(m.X, m.Y) != Empty {
		return false
	}
	for _, d := range directions {
		if b.flanks(m.X, m.Y, d.dx, d.dy, side) > 0 {
			return true
		}
	}
	return false
}

// DoMove places a disc and flips every bracketed line. Illegal moves are
// ignored.
func (b *GameBoard) DoMove(m Move, side Side) {
	if !b.CheckMove(m, side) {
		return
	}
	for _, d := range directions {
		n := b.flanks(m.X, m.Y, d.dx, d.dy, side)
		x, y := m.X, m.Y
		for i := 0; i < n; i++ {
			x, y = x+d.dx, y+d.dy
			b.set(x, y, side)
		}
	}
	b.set(m.X, m.Y, side)
}

func (b *GameBoard) Copy() Board {
	return b.Clone()
}

func (b *GameBoard) Clone() *GameBoard {
	c := *b
	return &c
}

func (b *GameBoard) Count(side Side) int {
	n := 0
	for _, c := range b.cells {
		if c == side {
			n++
		}
	}
	return n
}

func (b *GameBoard) CountCorners(side Side) int {
	n := 0
	for _, m := range corners {
		if b.get(m.X, m.Y) == side {
			n++
		}
	}
	return n
}

func (b *GameBoard) HasMoves(side Side) bool {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b.CheckMove(Move{x, y}, side) {
				return true
			}
		}
	}
	return false
}

func (b *GameBoard) IsDone() bool {
	return !b.HasMoves(Black) && !b.HasMoves(White)
}

// Winner returns the side with more discs, or Empty on a tie.
func (b *GameBoard) Winner() Side {
	black, white := b.Count(Black), b.Count(White)
	if black > white {
		return Black
	} else if white > black {
		return White
	}
	return Empty
}

func (b *GameBoard) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch b.get(x, y) {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
