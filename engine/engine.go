package engine

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/pkg/errors"
)

var (
	ErrIllegalMove  = errors.New("agent played an illegal move")
	ErrIllegalPass  = errors.New("agent passed with legal moves available")
	ErrTimeExceeded = errors.New("agent exceeded its time budget")
)

// Agent plays one side of a game, one turn per call. opponentsMove is the
// other side's previous turn (a pass on the first turn).
type Agent interface {
	ComputeMove(opponentsMove game.Turn, msLeft int) (game.Turn, error)
}

// Reporter is implemented by agents that expose their last search.
type Reporter interface {
	LastSearch() metrics.SearchMetric
}

type Engine interface {
	// Run plays a game until neither side can move or the turn limit is hit
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
