package agent

import (
	"rokumon/experiments/metrics"
	"rokumon/game"
	"rokumon/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewMCTS plays the most visited root move of every search.
func NewMCTS(mcts *searcher.MCTS) Strategy {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) GetMove(g *game.Game) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(g)
	if len(policy) == 0 {
		panic("no legal moves for " + g.CurrentPlayer().Name)
	}
	return findMax(policy), metric
}

func findMax(policy map[game.Move]float64) game.Move {
	var maxMove game.Move
	maxVisit := -1.0
	for move, visit := range policy {
		if visit > maxVisit {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}
