package agent

import (
	"rokumon/experiments/metrics"
	"rokumon/game"
)

type randomAgent struct{}

// NewRandom plays uniformly random legal moves.
func NewRandom() Strategy {
	return randomAgent{}
}

func (randomAgent) GetMove(g *game.Game) (game.Move, metrics.SearchMetric) {
	m, ok := g.RandomMove()
	if !ok {
		panic("no legal moves for " + g.CurrentPlayer().Name)
	}
	return m, metrics.SearchMetric{Goroutines: 1, Nodes: 1}
}
