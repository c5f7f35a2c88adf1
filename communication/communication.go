package communication

import "othello/game"

// MoveRequest asks an agent for its next turn.
type MoveRequest struct {
	OpponentsMove game.Turn `json:"opponentsMove"`
	MsLeft        int       `json:"msLeft"`
}

// MoveResponse carries the agent's turn; a null move is a pass.
type MoveResponse struct {
	Move game.Turn `json:"move"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
