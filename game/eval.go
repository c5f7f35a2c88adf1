package game

// CornerWeight scales the corner term of EvaluateParityCorners.
const CornerWeight = 5

// EvaluateParityCorners scores coin parity plus weighted corner control.
// The corner term is zero while no corner is occupied.
func EvaluateParityCorners(b Board, forSide, againstSide Side) int {
	score := coinParity(b, forSide, againstSide)

	mine, theirs := b.CountCorners(forSide), b.CountCorners(againstSide)
	if mine+theirs != 0 {
		score += CornerWeight * (mine - theirs)
	}
	return score
}

// EvaluateParity scores material only.
func EvaluateParity(b Board, forSide, againstSide Side) int {
	return coinParity(b, forSide, againstSide)
}

func coinParity(b Board, forSide, againstSide Side) int {
	return b.Count(forSide) - b.Count(againstSide)
}
