package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// nim is take-away with one pile: each turn removes one to three stones and
// whoever takes the last stone wins.
type nim struct {
	pile    int
	toMove  int
	history []int
}

func (n *nim) Actions(player int) (bool, []int) {
	var actions []int
	for take := 1; take <= 3 && take <= n.pile; take++ {
		actions = append(actions, take)
	}
	return n.toMove == player, actions
}

func (n *nim) Execute(take int, player int) int {
	mover := n.toMove
	n.pile -= take
	n.toMove = 1 - n.toMove
	n.history = append(n.history, take)
	if n.pile > 0 {
		return 0
	}
	if mover == player {
		return 1
	}
	return -1
}

func (n *nim) Undo() {
	last := len(n.history) - 1
	n.pile += n.history[last]
	n.history = n.history[:last]
	n.toMove = 1 - n.toMove
}

func (n *nim) IsUpperBound(fitness int, _ int) bool { return fitness == 1 }

func (n *nim) IsLowerBound(fitness int, _ int) bool { return fitness == -1 }

func TestAlphaBetaSearch(t *testing.T) {
	t.Run("solves a won position", func(t *testing.T) {
		state := &nim{pile: 5}
		ab := NewAlphaBeta[int, int, int](0)

		line, metric, ok := ab.Search(state)

		require.True(t, ok)
		require.Equal(t, 1, line.Path[0], "Taking one stone leaves a lost pile of four")
		require.Equal(t, 1, line.Fitness)
		require.True(t, metric.Completed, "The whole tree should be searched")
		require.Positive(t, metric.Nodes)
		require.Equal(t, 5, state.pile, "Search should undo every action it executes")
		require.Empty(t, state.history)
	})

	t.Run("solves a lost position", func(t *testing.T) {
		line, metric, ok := NewAlphaBeta[int, int, int](0).Search(&nim{pile: 8})

		require.True(t, ok)
		require.Equal(t, -1, line.Fitness)
		require.True(t, metric.Completed)
	})

	t.Run("searches for the opponent", func(t *testing.T) {
		line, _, ok := NewAlphaBeta[int, int, int](1).Search(&nim{pile: 6, toMove: 1})

		require.True(t, ok)
		require.Equal(t, 2, line.Path[0])
		require.Equal(t, 1, line.Fitness)
	})

	t.Run("depth limit", func(t *testing.T) {
		line, metric, ok := NewAlphaBeta[int, int, int](0, WithDepth(2)).Search(&nim{pile: 20})

		require.True(t, ok)
		require.Len(t, line.Path, 2, "Line should reach the depth limit")
		require.Equal(t, 0, line.Fitness)
		require.Equal(t, 2, metric.Depth)
		require.False(t, metric.Completed, "Leaves were cut off by depth")
	})

	t.Run("depth limit beyond the end", func(t *testing.T) {
		line, metric, ok := NewAlphaBeta[int, int, int](0, WithDepth(10)).Search(&nim{pile: 1})

		require.True(t, ok)
		require.Equal(t, []int{1}, line.Path)
		require.True(t, metric.Completed)
		require.Equal(t, 1, metric.Depth, "Deepening should stop once complete")
	})

	t.Run("duration limit", func(t *testing.T) {
		state := &nim{pile: 60}
		start := time.Now()

		line, metric, ok := NewAlphaBeta[int, int, int](0, WithDuration(20*time.Millisecond)).Search(state)

		require.True(t, ok)
		require.NotEmpty(t, line.Path)
		require.Contains(t, []int{1, 2, 3}, line.Path[0])
		require.Less(t, time.Since(start), time.Second, "Search should stop soon after the deadline")
		require.Positive(t, metric.Depth, "At least depth one should finish")
		require.Equal(t, 60, state.pile)
	})

	t.Run("nothing to play", func(t *testing.T) {
		_, _, ok := NewAlphaBeta[int, int, int](0).Search(&nim{pile: 0})

		require.False(t, ok)
	})
}
