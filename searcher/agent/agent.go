package agent

import (
	"rokumon/experiments/metrics"
	"rokumon/game"
)

// Strategy picks the move of the player to move. It may search on a copy
// but leaves g untouched, and only returns moves legal in g.
type Strategy interface {
	GetMove(g *game.Game) (game.Move, metrics.SearchMetric)
}
