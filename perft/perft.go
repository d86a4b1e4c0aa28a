// Package perft counts the positions reachable from a game in a fixed number
// of plies. The counts check the move generator and measure its speed.
package perft

import (
	"runtime"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"rokumon/game"
)

type Option func(*config)

type config struct {
	workers int
	cache   bool
}

// WithWorkers bounds how many branches are searched on their own goroutine.
// Branches beyond the bound run on the goroutine that found them.
func WithWorkers(workers int) Option {
	return func(c *config) {
		if workers > 0 {
			c.workers = workers
		}
	}
}

// WithCache memoises subtree counts of transposed positions.
func WithCache() Option {
	return func(c *config) {
		c.cache = true
	}
}

// Perft walks the tree by applying and undoing moves on g, which ends up
// unchanged.
func Perft(g *game.Game, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := g.GenerateMoves()
	if depth == 1 {
		return len(moves)
	}

	total := 0
	for _, m := range moves {
		fight := g.ApplyMoveUnchecked(m)
		total += Perft(g, depth-1)
		g.UndoMove(m, fight)
	}
	return total
}

type DivideEntry struct {
	Move  game.Move
	Count int
}

// Divide splits Perft(g, depth) by root move.
func Divide(g *game.Game, depth int) []DivideEntry {
	moves := g.GenerateMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		fight := g.ApplyMoveUnchecked(m)
		entries = append(entries, DivideEntry{Move: m, Count: Perft(g, depth-1)})
		g.UndoMove(m, fight)
	}
	return entries
}

type key struct {
	features game.GameFeatures
	result   game.Result
	depth    int
}

type walker struct {
	sem   *semaphore.Weighted
	cache *xsync.MapOf[key, int]
}

// ParallelPerft gives the same count as Perft. Every branch works on its own
// clone of g, which is never modified.
func ParallelPerft(g *game.Game, depth int, options ...Option) int {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, option := range options {
		option(&cfg)
	}

	w := &walker{sem: semaphore.NewWeighted(int64(cfg.workers))}
	if cfg.cache {
		w.cache = xsync.NewMapOf[key, int]()
	}
	return w.count(g.Clone(), depth)
}

func (w *walker) count(g *game.Game, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := g.GenerateMoves()
	if depth == 1 {
		return len(moves)
	}

	var k key
	if w.cache != nil {
		k = key{features: g.DefiningFeatures(), result: g.Result(), depth: depth}
		if n, ok := w.cache.Load(k); ok {
			return n
		}
	}

	counts := make([]int, len(moves))
	var eg errgroup.Group
	for i, m := range moves {
		i := i
		child := g.Clone()
		child.ApplyMoveUnchecked(m)
		if !w.sem.TryAcquire(1) {
			counts[i] = w.count(child, depth-1)
			continue
		}
		eg.Go(func() error {
			defer w.sem.Release(1)
			counts[i] = w.count(child, depth-1)
			return nil
		})
	}
	eg.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	if w.cache != nil {
		w.cache.Store(k, total)
	}
	return total
}
