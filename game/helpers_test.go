package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	r2 = NewDie(Red, 2)
	r4 = NewDie(Red, 4)
	r6 = NewDie(Red, 6)
	b1 = NewDie(Black, 1)
	b3 = NewDie(Black, 3)
	b5 = NewDie(Black, 5)
	w1 = NewDie(White, 1)
)

func uc(row, card int) UserCoord {
	return NewUserCoord(row, card)
}

func newOrderedGame(t *testing.T, cards string, rules Rules) *Game {
	t.Helper()
	deck, err := NewDeck(cards)
	require.NoError(t, err)
	return NewGame(Bricks7(), deck, rules)
}

func applyUserMoves(t *testing.T, g *Game, moves ...UserMove) {
	t.Helper()
	for _, um := range moves {
		m, err := g.ConvertMoveCoords(um)
		require.NoError(t, err, "Move %s should convert", um)
		_, err = g.ApplyMove(m)
		require.NoError(t, err, "Move %s should be legal", um)
	}
}

func validateUserMove(g *Game, um UserMove) error {
	m, err := g.ConvertMoveCoords(um)
	if err != nil {
		return err
	}
	return g.ValidateMove(m)
}
