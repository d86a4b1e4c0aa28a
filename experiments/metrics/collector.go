package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Nodes        int
	Depth        int
	Completed    bool
	Episodes     int
	FullPlayouts int
}

type MoveMetric struct {
	Step   int
	Player int // 1 or 2
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Outcome        int // 1 if player 1 won, -1 if player 2 won, 0 otherwise
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers statistics of a single search. Its counters may be
// updated from several goroutines.
type Collector interface {
	Start(goroutines int)
	AddNode()
	AddEpisode()
	AddFullPlayout()
	SetDepth(depth int)
	SetCompleted(completed bool)
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	startTime    time.Time
	nodes        atomic.Int64
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	depth        atomic.Int32
	completed    atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.depth.Store(0)
	m.completed.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) SetCompleted(completed bool) {
	m.completed.Store(completed)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Nodes:        int(m.nodes.Load()),
		Depth:        int(m.depth.Load()),
		Completed:    m.completed.Load(),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)        {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddEpisode()                 {}
func (m *dummyCollector) AddFullPlayout()             {}
func (m *dummyCollector) SetDepth(depth int)          {}
func (m *dummyCollector) SetCompleted(completed bool) {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
