package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateMoves(t *testing.T) {
	g := newOrderedGame(t, "gggjjjj", DefaultRules())
	require.Len(t, g.GenerateMoves(), 56)
	applyUserMoves(t, g, Place(r2, uc(2, 1)))
	require.Len(t, g.GenerateMoves(), 59)
	applyUserMoves(t, g, Place(b1, uc(1, 1)))
	require.Len(t, g.GenerateMoves(), 53)

	t.Run("depends on rules", func(t *testing.T) {
		for _, tc := range []struct {
			rules Rules
			want  int
		}{
			{NewRules(true, false), 21},
			{NewRules(false, true), 42},
			{NewRules(false, false), 7},
		} {
			g := newOrderedGame(t, "gggjjjj", tc.rules)
			require.Len(t, g.GenerateMoves(), tc.want, "%+v", tc.rules)
		}
	})

	t.Run("order is deterministic", func(t *testing.T) {
		a := newOrderedGame(t, "gggjjjj", DefaultRules())
		b := newOrderedGame(t, "gggjjjj", DefaultRules())
		moves := a.GenerateMoves()
		require.Equal(t, moves, b.GenerateMoves())
		require.Equal(t, Place(r2, NewHex(0, 0)), moves[0], "Places come first in coordinate order")
		require.Equal(t, KindSurprise, moves[len(moves)-1].Kind, "Surprises come last")
	})

	t.Run("every generated move validates", func(t *testing.T) {
		g := newOrderedGame(t, "gggjjjj", DefaultRules())
		for step := 0; step < 30 && !g.IsOver(); step++ {
			moves := g.GenerateMoves()
			for _, m := range moves {
				require.NoError(t, g.ValidateMove(m))
				require.NotEqual(t, KindSubmit, m.Kind)
			}
			g.ApplyMoveUnchecked(moves[(step*5)%len(moves)])
		}
	})

	t.Run("fights are generated for contested cards", func(t *testing.T) {
		g := newOrderedGame(t, "gggjjjj", NewRules(true, false))
		applyUserMoves(t, g, Place(r2, uc(1, 1)), Place(b1, uc(2, 1)), MoveDie(r2, uc(1, 1), uc(2, 1)))
		require.Contains(t, g.GenerateMoves(), Fight(NewHex(0, 0)))
	})
}

func TestRandomMove(t *testing.T) {
	g := newOrderedGame(t, "gggjjjj", DefaultRules())
	m, ok := g.RandomMove()
	require.True(t, ok)
	require.NoError(t, g.ValidateMove(m))

	g.ApplyMoveUnchecked(Submit[Coord]())
	_, ok = g.RandomMove()
	require.False(t, ok, "A finished game has no random move")
}

func TestHasMovesFor(t *testing.T) {
	g := newOrderedGame(t, "gggjjjj", DefaultRules())
	require.True(t, g.hasMovesFor(true))
	require.True(t, g.hasMovesFor(false))
	require.True(t, g.Player1Moves(), "Probing the opponent should not flip the turn")
}

func TestDefiningFeatures(t *testing.T) {
	a := newOrderedGame(t, "gggjjjj", DefaultRules())
	applyUserMoves(t, a, Place(r2, uc(2, 1)), Place(b1, uc(1, 1)), Place(r4, uc(2, 2)))

	b := newOrderedGame(t, "gggjjjj", DefaultRules())
	applyUserMoves(t, b, Place(r4, uc(2, 2)), Place(b1, uc(1, 1)), Place(r2, uc(2, 1)))

	require.Equal(t, a.DefiningFeatures(), b.DefiningFeatures(), "Transpositions share features")
	require.Equal(t, a.Hash(), b.Hash())

	applyUserMoves(t, b, Place(b3, uc(1, 2)))
	require.NotEqual(t, a.DefiningFeatures(), b.DefiningFeatures())
	require.NotEqual(t, a.Hash(), b.Hash())

	seen := map[GameFeatures]int{a.DefiningFeatures(): 1}
	seen[a.Clone().DefiningFeatures()]++
	require.Equal(t, 2, seen[a.DefiningFeatures()])
}
