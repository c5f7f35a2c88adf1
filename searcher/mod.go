package searcher

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/pkg/errors"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrBadParam        = errors.New("bad strategy parameter")
)

// Strategy picks one of the root candidates for side me playing against op.
// Choose must not mutate b.
type Strategy interface {
	Name() string
	Choose(b game.Board, candidates []game.Move, me, op game.Side) Decision
}

// Decision is the outcome of one search. Found is false only when there
// were no candidates to choose from.
type Decision struct {
	Move   game.Move
	Score  int
	Found  bool
	Metric metrics.SearchMetric
}

func (d Decision) Turn() game.Turn {
	if !d.Found {
		return game.Pass
	}
	return game.Play(d.Move)
}

type Option func(s *settings)

type settings struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
	seed     uint64
	seeded   bool
}

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:    meta.DefaultDepth,
		evaluate: game.EvaluateParityCorners,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if !s.seeded {
		s.seed = uint64(time.Now().UnixNano())
	}
	return s
}
