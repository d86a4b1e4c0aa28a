package searcher

import (
	"time"

	"golang.org/x/exp/constraints"

	"rokumon/experiments/metrics"
)

// Game is the state AlphaBeta explores. P identifies players, A actions and
// F the fitness of a state.
//
// Actions lists what can be played now and whether it is player's turn.
// Execute plays an action and returns the fitness of the new state for
// player. Undo reverts the latest Execute. A fitness for which IsUpperBound
// (IsLowerBound) holds cannot be improved on (worsened) and stops the search
// of its siblings.
type Game[P comparable, A any, F constraints.Ordered] interface {
	Actions(player P) (myTurn bool, actions []A)
	Execute(action A, player P) F
	Undo()
	IsUpperBound(fitness F, player P) bool
	IsLowerBound(fitness F, player P) bool
}

// Line is the principal variation found by a search. Path starts with the
// action to play and Fitness is the value at its end.
type Line[A any, F constraints.Ordered] struct {
	Path    []A
	Fitness F
}

type AlphaBeta[P comparable, A any, F constraints.Ordered] struct {
	player   P
	duration time.Duration
	depth    int
}

// NewAlphaBeta searches on behalf of player. Without WithDepth or
// WithDuration it deepens until the whole game tree has been seen.
func NewAlphaBeta[P comparable, A any, F constraints.Ordered](player P, options ...Option) *AlphaBeta[P, A, F] {
	c := newConfig(options)
	return &AlphaBeta[P, A, F]{
		player:   player,
		duration: c.duration,
		depth:    c.depth,
	}
}

// Search runs iterative deepening from the current state of g and leaves g
// as it found it. It returns false if there is nothing to play.
//
// When time runs out the line of the deepest finished iteration is kept. If
// not even depth one finished, the best of the root actions evaluated so far
// is used, and failing that the first action.
func (ab *AlphaBeta[P, A, F]) Search(g Game[P, A, F]) (Line[A, F], metrics.SearchMetric, bool) {
	collector := metrics.NewCollector()
	collector.Start(1)

	_, actions := g.Actions(ab.player)
	if len(actions) == 0 {
		return Line[A, F]{}, collector.Complete(), false
	}

	r := &run[P, A, F]{player: ab.player, game: g, metrics: collector}
	if ab.duration > 0 {
		r.deadline = time.Now().Add(ab.duration)
	}

	var (
		line  Line[A, F]
		found bool
		zero  F
	)
	for depth := 1; ab.depth == 0 || depth <= ab.depth; depth++ {
		fitness, path, complete := r.search(zero, depth, bound[F]{}, bound[F]{})
		if r.expired {
			if !found && len(path) > 0 {
				line, found = Line[A, F]{Path: path, Fitness: fitness}, true
			}
			break
		}
		line, found = Line[A, F]{Path: path, Fitness: fitness}, true
		collector.SetDepth(depth)
		if complete {
			collector.SetCompleted(true)
			break
		}
	}
	if !found || len(line.Path) == 0 {
		line = Line[A, F]{Path: actions[:1]}
	}
	return line, collector.Complete(), true
}

type bound[F constraints.Ordered] struct {
	value F
	set   bool
}

type run[P comparable, A any, F constraints.Ordered] struct {
	player   P
	game     Game[P, A, F]
	deadline time.Time
	expired  bool
	metrics  metrics.Collector
}

func (r *run[P, A, F]) timeUp() bool {
	if !r.expired && !r.deadline.IsZero() && time.Now().After(r.deadline) {
		r.expired = true
	}
	return r.expired
}

// search returns the value of the current state, reached with the given
// fitness, the line leading to that value and whether no leaf of the
// subtree was cut off by depth. Values of subtrees interrupted by the
// deadline are never used.
func (r *run[P, A, F]) search(fitness F, depth int, alpha, beta bound[F]) (F, []A, bool) {
	r.metrics.AddNode()

	myTurn, actions := r.game.Actions(r.player)
	if len(actions) == 0 {
		return fitness, nil, true
	}
	if depth == 0 {
		return fitness, nil, false
	}

	var (
		best     F
		bestPath []A
		found    bool
		complete = true
	)
	for _, action := range actions {
		if r.timeUp() {
			break
		}

		v, path, c := r.search(r.game.Execute(action, r.player), depth-1, alpha, beta)
		r.game.Undo()
		if r.expired {
			break
		}
		complete = complete && c

		if !found || (myTurn && v > best) || (!myTurn && v < best) {
			best, found = v, true
			bestPath = append([]A{action}, path...)
		}

		if myTurn {
			if r.game.IsUpperBound(v, r.player) || (beta.set && v >= beta.value) {
				break
			}
			if !alpha.set || v > alpha.value {
				alpha = bound[F]{value: v, set: true}
			}
		} else {
			if r.game.IsLowerBound(v, r.player) || (alpha.set && v <= alpha.value) {
				break
			}
			if !beta.set || v < beta.value {
				beta = bound[F]{value: v, set: true}
			}
		}
	}

	if !found {
		return fitness, nil, false
	}
	return best, bestPath, complete
}
