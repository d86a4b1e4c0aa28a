package searcher

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"rokumon/experiments/metrics"
	"rokumon/game"
)

// MCTS is a tree parallel UCT search with virtual loss.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	root       *decision
	metrics    metrics.Collector
}

// NewMCTS panics unless WithEpisodes or WithDuration is given.
func NewMCTS(goroutines int, options ...Option) *MCTS {
	c := newConfig(options)
	if c.episodes <= 0 && c.duration <= 0 {
		panic("must specify search episodes or duration")
	}
	collector := metrics.NewDummyCollector()
	if c.metrics {
		collector = metrics.NewCollector()
	}
	return &MCTS{
		goroutines: max(goroutines, 1),
		duration:   c.duration,
		episodes:   c.episodes,
		cutoff:     c.cutoff,
		evaluate:   c.evaluate,
		metrics:    collector,
	}
}

// Simulate builds a fresh tree below g and returns the visit count of each
// root move. g is not modified. Simulate must not be called concurrently on
// the same MCTS.
func (m *MCTS) Simulate(g *game.Game) (map[game.Move]float64, metrics.SearchMetric) {
	m.root = newDecision(nil, g)

	m.metrics.Start(m.goroutines)
	if m.episodes > 0 {
		m.iterate(g)
	} else {
		m.countdown(g)
	}
	metric := m.metrics.Complete()

	policy := m.root.Policy()
	log.Debug().Msgf("mcts ran %d episodes (%d full playouts) over %d root moves in %v",
		metric.Episodes, metric.FullPlayouts, len(policy), metric.Duration)
	return policy, metric
}

func (m *MCTS) iterate(g *game.Game) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(g)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(g *game.Game) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(g)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

// simulate only reads g; every episode plays on its own clone.
func (m *MCTS) simulate(g *game.Game) {
	state := g.Clone()
	node := selectThenExpand(m.root, state, m.metrics)
	score := rollout(state, m.cutoff, m.evaluate, m.metrics)
	backup(node, score)
}

func selectThenExpand(root *decision, g *game.Game, collector metrics.Collector) *decision {
	parent := root
	child, selected := parent.SelectOrExpand(g)
	collector.AddNode()
	for selected && child != parent {
		parent = child
		child, selected = parent.SelectOrExpand(g)
		collector.AddNode()
	}
	return child
}

// rollout plays random moves and scores the outcome for player 1.
func rollout(g *game.Game, cutoff int, evaluate game.Evaluate, collector metrics.Collector) float64 {
	for depth := 0; !g.IsOver() && depth < cutoff; depth++ {
		move, ok := g.RandomMove()
		if !ok {
			break
		}
		g.ApplyMoveUnchecked(move)
	}

	switch g.Result() {
	case game.FirstPlayerWon:
		collector.AddFullPlayout()
		return Win
	case game.SecondPlayerWon:
		collector.AddFullPlayout()
		return Loss
	}

	// Cut off, evaluate for the player to move
	score := evaluate(g)
	if !g.Player1Moves() {
		score = -score
	}
	return score
}

func backup(node *decision, score float64) {
	for node != nil {
		node = node.Backup(score)
	}
}
