package engine

import "rokumon/experiments/metrics"

// Defaults for a local game.
const (
	MaxMoves        = 300
	RepetitionLimit = 3
	maxAttempts     = 3
)

type Outcome int

const (
	Draw Outcome = iota
	FirstPlayerWon
	SecondPlayerWon
)

// Score is 1 if player 1 won, -1 if player 2 won and 0 otherwise.
func (o Outcome) Score() int {
	switch o {
	case FirstPlayerWon:
		return 1
	case SecondPlayerWon:
		return -1
	}
	return 0
}

func (o Outcome) String() string {
	switch o {
	case FirstPlayerWon:
		return "player 1 won"
	case SecondPlayerWon:
		return "player 2 won"
	}
	return "draw"
}

// Reasons a game ended.
const (
	ReasonResult     = "result"
	ReasonRepetition = "repetition"
	ReasonMaxMoves   = "max moves"
)

type Engine interface {
	// Run plays the game till there's a result, a position repeats too often
	// or the move limit is reached
	Run() (outcome Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
