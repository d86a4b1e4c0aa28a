package searcher

import (
	"time"

	"rokumon/game"
)

// MaxCutoff bounds rollouts that never reach a result.
const MaxCutoff = 1000

// Option configures AlphaBeta and MCTS. Options a searcher has no use for
// are ignored.
type Option func(c *config)

type config struct {
	duration time.Duration
	depth    int
	episodes int
	cutoff   int
	evaluate game.Evaluate
	metrics  bool
}

// WithDuration stops the search once the duration has elapsed.
func WithDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
		}
	}
}

// WithDepth limits iterative deepening to the given number of plies.
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(c *config) {
		if episodes > 0 {
			c.episodes = episodes
		}
	}
}

// WithCutoff ends rollouts after depth random moves.
func WithCutoff(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.cutoff = depth
		}
	}
}

// WithEvaluation scores positions where a rollout was cut off.
func WithEvaluation(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// WithMetrics makes MCTS count its episodes and playouts. AlphaBeta always
// does.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

func newConfig(options []Option) config {
	c := config{
		cutoff:   MaxCutoff,
		evaluate: game.EvaluateTriples,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
