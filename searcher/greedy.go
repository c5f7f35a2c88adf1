package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Greedy takes the candidate with the best evaluation right after it is
// played.
type Greedy struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func NewGreedy(options ...Option) *Greedy {
	s := newSettings(options)
	return &Greedy{
		evaluate: s.evaluate,
		metrics:  s.metrics,
	}
}

func (g *Greedy) Name() string {
	return "greedy"
}

func (g *Greedy) Choose(b game.Board, candidates []game.Move, me, op game.Side) Decision {
	g.metrics.Start(g.Name(), 1)
	g.metrics.AddCandidates(len(candidates))

	d := Decision{}
	for _, move := range candidates {
		next := b.Copy()
		next.DoMove(move, me)
		g.metrics.AddNode()
		g.metrics.AddLeaf()

		score := g.evaluate(next, me, op)
		if !d.Found || score > d.Score {
			d = Decision{Move: move, Score: score, Found: true}
		}
	}
	d.Metric = g.metrics.Complete()
	return d
}
