package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random candidate. Used as a baseline opponent.
type Random struct {
	rng     *rand.Rand
	metrics metrics.Collector
}

func NewRandom(options ...Option) *Random {
	s := newSettings(options)
	return &Random{
		rng:     rand.New(rand.NewSource(s.seed)),
		metrics: s.metrics,
	}
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) Choose(b game.Board, candidates []game.Move, me, op game.Side) Decision {
	r.metrics.Start(r.Name(), 0)
	r.metrics.AddCandidates(len(candidates))

	if len(candidates) == 0 {
		return Decision{Metric: r.metrics.Complete()}
	}
	move := candidates[r.rng.Intn(len(candidates))]
	return Decision{Move: move, Found: true, Metric: r.metrics.Complete()}
}
