package game

// LegalMoves lists every legal placement for side, scanning x then y. Both
// search strategies break ties by this order.
func LegalMoves(side Side, b Board) []Move {
	var moves []Move
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			m := Move{X: x, Y: y}
			if b.CheckMove(m, side) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}
