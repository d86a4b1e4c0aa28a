package game

import "math"

const (
	MaxFitness int32 = math.MaxInt32
	MinFitness int32 = math.MinInt32
)

// EvaluateForFirstPlayer scores the position for player 1. Finished games
// score MaxFitness or MinFitness. Otherwise every controlled card counts the
// lines it takes part in, plus one for a covering die, signed by the owner
// of its uncovered die.
func (g *Game) EvaluateForFirstPlayer() int32 {
	switch g.result {
	case FirstPlayerWon:
		return MaxFitness
	case SecondPlayerWon:
		return MinFitness
	}

	var score int32
	for _, c := range g.board.coords {
		card := g.board.cards[c]
		var value int32
		switch len(card.Dice) {
		case 1:
			value = int32(g.board.TriplesContaining(c))
		case 2:
			value = int32(g.board.TriplesContaining(c)) + 1
		default:
			continue
		}
		if top, _ := card.TopDie(); !top.BelongsToPlayer1() {
			value = -value
		}
		score += value
	}
	return score
}

// EvaluateFor scores the position from the given player's perspective.
func (g *Game) EvaluateFor(player1 bool) int32 {
	score := g.EvaluateForFirstPlayer()
	if player1 {
		return score
	}
	switch score {
	case MaxFitness:
		return MinFitness
	case MinFitness:
		return MaxFitness
	default:
		return -score
	}
}

// EvaluateTriples squashes the line count evaluation into [-1, 1] for the
// player to move.
func EvaluateTriples(g *Game) float64 {
	score := g.EvaluateFor(g.player1Moves)
	switch score {
	case MaxFitness:
		return 1
	case MinFitness:
		return -1
	}
	return math.Tanh(float64(score) / 4)
}
