package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rokumon/game"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	deck, err := game.NewDeck("gggjjjj")
	require.NoError(t, err)
	return game.NewGame(game.Bricks7(), deck, game.DefaultRules())
}

// winInOne leaves player 1 to move with a red line one placement away.
func winInOne(t *testing.T) *game.Game {
	t.Helper()
	g := newGame(t)
	moves := []game.UserMove{
		game.Place(game.NewDie(game.Red, 6), game.NewUserCoord(1, 1)),
		game.Place(game.NewDie(game.White, 1), game.NewUserCoord(2, 1)),
		game.Place(game.NewDie(game.Red, 4), game.NewUserCoord(1, 2)),
		game.Place(game.NewDie(game.Black, 3), game.NewUserCoord(2, 2)),
	}
	for _, um := range moves {
		m, err := g.ConvertMoveCoords(um)
		require.NoError(t, err)
		_, err = g.ApplyMove(m)
		require.NoError(t, err)
	}
	require.True(t, g.Player1Moves())
	return g
}

func requireWins(t *testing.T, g *game.Game, m game.Move) {
	t.Helper()
	after := g.Clone()
	_, err := after.ApplyMove(m)
	require.NoError(t, err)
	require.Equal(t, game.FirstPlayerWon, after.Result(), "%s should win at once", m)
}
