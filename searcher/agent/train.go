package agent

import (
	"math"
	"slices"

	"golang.org/x/exp/rand"

	"rokumon/experiments/metrics"
	"rokumon/game"
	"rokumon/searcher"
)

type samplingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
}

// NewSamplingMCTS draws its move from the visit counts raised to
// 1/temperature. Temperatures at or below zero fall back to 1.
func NewSamplingMCTS(mcts *searcher.MCTS, temperature float64) Strategy {
	if temperature <= 0 {
		temperature = 1
	}
	return samplingAgent{mcts: mcts, temperature: temperature}
}

func (a samplingAgent) GetMove(g *game.Game) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(g)
	if len(policy) == 0 {
		panic("no legal moves for " + g.CurrentPlayer().Name)
	}
	return sample(adjustTemperature(policy, a.temperature), rand.Float64()), metric
}

func adjustTemperature(policy map[game.Move]float64, temperature float64) map[game.Move]float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Move]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

// sample walks the moves in board order so the same draw always picks the
// same move.
func sample(policy map[game.Move]float64, draw float64) game.Move {
	moves := make([]game.Move, 0, len(policy))
	for move := range policy {
		moves = append(moves, move)
	}
	slices.SortFunc(moves, compareMoves)

	cumulative := 0.0
	for _, move := range moves {
		cumulative += policy[move]
		if draw < cumulative {
			return move
		}
	}
	return moves[len(moves)-1] // Rounding errors
}

func compareMoves(a, b game.Move) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	if c := a.Die.Compare(b.Die); c != 0 {
		return c
	}
	if c := a.From.Compare(b.From); c != 0 {
		return c
	}
	if c := a.To.Compare(b.To); c != 0 {
		return c
	}
	return a.Dest.Compare(b.Dest)
}
