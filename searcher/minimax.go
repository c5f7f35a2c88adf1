package searcher

import (
	"slices"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// WorstCaseDepth is the lookahead of the worst-case strategy: our move,
// then the opponent's most damaging reply.
const WorstCaseDepth = 2

// Minimax is a depth-limited minimax search. Every child position is
// searched on its own copy of the board.
//
// A side with no legal move at a non-terminal node passes: the board is
// unchanged, one ply is consumed and the other side moves next.
type Minimax struct {
	name     string
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func NewMinimax(options ...Option) *Minimax {
	s := newSettings(options)
	return &Minimax{
		name:     "minimax",
		depth:    s.depth,
		evaluate: s.evaluate,
		metrics:  s.metrics,
	}
}

// NewWorstCase searches two plies and keeps the candidate whose worst
// reply scores highest. When the opponent has no reply, the position after
// our move is scored as is.
func NewWorstCase(options ...Option) *Minimax {
	m := NewMinimax(append(slices.Clone(options), WithDepth(WorstCaseDepth))...)
	m.name = "worstcase"
	return m
}

func (m *Minimax) Name() string {
	return m.name
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Choose(b game.Board, candidates []game.Move, me, op game.Side) Decision {
	m.metrics.Start(m.name, m.depth)
	m.metrics.AddCandidates(len(candidates))

	if len(candidates) == 0 {
		return Decision{Metric: m.metrics.Complete()}
	}

	m.metrics.AddNode()
	score, move := m.best(b, candidates, m.depth, true, me, op)
	metric := m.metrics.Complete()

	log.Debug().
		Str("strategy", m.name).
		Int("depth", m.depth).
		Int("score", score).
		Stringer("move", move).
		Msg("search complete")

	return Decision{Move: move, Score: score, Found: true, Metric: metric}
}

// Search returns the minimax value of b and, when the side to move has a
// move at this node, the move achieving it. ok is false at leaves and
// passes.
func (m *Minimax) Search(b game.Board, depth int, maximizing bool, me, op game.Side) (score int, move game.Move, ok bool) {
	if depth < 0 {
		panic("negative search depth")
	}
	m.metrics.AddNode()

	if depth == 0 || b.IsDone() {
		m.metrics.AddLeaf()
		return m.evaluate(b, me, op), game.Move{}, false
	}

	side := me
	if !maximizing {
		side = op
	}

	moves := game.LegalMoves(side, b)
	if len(moves) == 0 {
		score, _, _ = m.Search(b, depth-1, !maximizing, me, op)
		return score, game.Move{}, false
	}

	score, move = m.best(b, moves, depth, maximizing, me, op)
	return score, move, true
}

// best scores each move one ply down and keeps the first strictly better
// one. Ties go to the earlier move.
func (m *Minimax) best(b game.Board, moves []game.Move, depth int, maximizing bool, me, op game.Side) (int, game.Move) {
	side := me
	if !maximizing {
		side = op
	}

	bestMove := moves[0]
	bestScore := m.child(b, bestMove, side, depth, maximizing, me, op)
	for _, move := range moves[1:] {
		score := m.child(b, move, side, depth, maximizing, me, op)
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			bestMove = move
		}
	}
	return bestScore, bestMove
}

func (m *Minimax) child(b game.Board, move game.Move, side game.Side, depth int, maximizing bool, me, op game.Side) int {
	next := b.Copy()
	next.DoMove(move, side)
	score, _, _ := m.Search(next, depth-1, !maximizing, me, op)
	return score
}
