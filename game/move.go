package game

import (
	"encoding/json"
	"fmt"
)

// Move is a cell on the grid. It carries no side and no legality of its own.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (m Move) InBounds() bool {
	return m.X >= 0 && m.X < Size && m.Y >= 0 && m.Y < Size
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.X, m.Y)
}

// Turn is what a side does on its turn: place a disc or pass.
// The zero value is a pass.
type Turn struct {
	Move   Move
	Played bool
}

var Pass = Turn{}

func Play(m Move) Turn {
	return Turn{Move: m, Played: true}
}

func (t Turn) String() string {
	if !t.Played {
		return "pass"
	}
	return t.Move.String()
}

// MarshalJSON encodes a pass as null and a placement as {"x":..,"y":..}.
func (t Turn) MarshalJSON() ([]byte, error) {
	if !t.Played {
		return []byte("null"), nil
	}
	return json.Marshal(t.Move)
}

func (t *Turn) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Pass
		return nil
	}
	var raw struct {
		X *int `json:"x"`
		Y *int `json:"y"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.X == nil || raw.Y == nil {
		return ErrBadCoordinates
	}
	m := Move{X: *raw.X, Y: *raw.Y}
	if !m.InBounds() {
		return ErrBadCoordinates
	}
	*t = Play(m)
	return nil
}
