package game

import (
	"encoding/binary"
	"hash/fnv"
	"slices"
	"strings"
)

// GameFeatures is the part of a Game that decides its future: board
// contents, stocks, turn and surprise counters. It is comparable, so it can
// key a map for repetition detection.
type GameFeatures struct {
	Cards            string
	Player1Dice      string
	Player2Dice      string
	Player1Moves     bool
	Player1Surprises uint8
	Player2Surprises uint8
}

func (g *Game) DefiningFeatures() GameFeatures {
	var cards strings.Builder
	cards.Grow(len(g.board.coords) * 8)
	for _, c := range g.board.coords {
		card := g.board.cards[c]
		cards.WriteByte(byte(c.X))
		cards.WriteByte(byte(c.Y))
		cards.WriteByte(byte(c.Z))
		cards.WriteByte(byte(card.Kind))
		cards.WriteByte(byte(len(card.Dice)))
		for _, d := range card.Dice {
			cards.WriteByte(dieByte(d))
		}
	}
	return GameFeatures{
		Cards:            cards.String(),
		Player1Dice:      stockKey(g.player1.Dice),
		Player2Dice:      stockKey(g.player2.Dice),
		Player1Moves:     g.player1Moves,
		Player1Surprises: g.player1Surprises,
		Player2Surprises: g.player2Surprises,
	}
}

// Stocks are multisets, so their order does not matter.
func stockKey(dice []Die) string {
	sorted := slices.Clone(dice)
	slices.SortFunc(sorted, Die.Compare)
	key := make([]byte, len(sorted))
	for i, d := range sorted {
		key[i] = dieByte(d)
	}
	return string(key)
}

func dieByte(d Die) byte {
	return byte(d.Color)<<4 | d.Value
}

func (f GameFeatures) Hash() StateHash {
	hasher := fnv.New64a()

	hasher.Write([]byte(f.Cards))
	hasher.Write([]byte{0xff})
	hasher.Write([]byte(f.Player1Dice))
	hasher.Write([]byte{0xff})
	hasher.Write([]byte(f.Player2Dice))

	binary.Write(hasher, binary.LittleEndian, f.Player1Moves)
	binary.Write(hasher, binary.LittleEndian, f.Player1Surprises)
	binary.Write(hasher, binary.LittleEndian, f.Player2Surprises)

	return StateHash(hasher.Sum64())
}

func (g *Game) Hash() StateHash {
	return g.DefiningFeatures().Hash()
}
