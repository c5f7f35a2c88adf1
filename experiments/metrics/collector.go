package metrics

import (
	"time"

	"othello/game"
)

type SearchMetric struct {
	Strategy   string
	Depth      int
	Duration   time.Duration
	Candidates int // Root moves considered
	Nodes      int // Positions visited, root included
	Leaves     int // Positions evaluated
}

type MoveMetric struct {
	Step int
	Side game.Side
	Turn game.Turn
	SearchMetric
}

type GameMetric struct {
	Winner     game.Side
	BlackDiscs int
	WhiteDiscs int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Passes     int
}

// Collector gathers counters for a single search. A collector belongs to
// one searcher and is never shared between goroutines.
type Collector interface {
	Start(strategy string, depth int)
	AddCandidates(n int)
	AddNode()
	AddLeaf()
	Complete() SearchMetric
}

type collector struct {
	strategy   string
	depth      int
	startTime  time.Time
	candidates int
	nodes      int
	leaves     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, depth int) {
	*m = collector{
		strategy:  strategy,
		depth:     depth,
		startTime: time.Now(),
	}
}

func (m *collector) AddCandidates(n int) {
	m.candidates += n
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Candidates: m.candidates,
		Nodes:      m.nodes,
		Leaves:     m.leaves,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) {}
func (m *dummyCollector) AddCandidates(n int)              {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddLeaf()                         {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
