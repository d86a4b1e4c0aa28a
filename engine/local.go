package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"rokumon/experiments/metrics"
	"rokumon/game"
	"rokumon/searcher/agent"
)

type Option func(l *Local)

func WithMaxMoves(moves int) Option {
	return func(l *Local) {
		if moves > 0 {
			l.maxMoves = moves
		}
	}
}

// WithRepetitionLimit draws the game once a position has been seen limit
// times.
func WithRepetitionLimit(limit int) Option {
	return func(l *Local) {
		if limit > 0 {
			l.repetitions = limit
		}
	}
}

// Local plays two strategies against each other in process.
type Local struct {
	game        *game.Game
	first       agent.Strategy
	second      agent.Strategy
	maxMoves    int
	repetitions int
}

func NewLocal(g *game.Game, first, second agent.Strategy, options ...Option) *Local {
	l := &Local{
		game:        g,
		first:       first,
		second:      second,
		maxMoves:    MaxMoves,
		repetitions: RepetitionLimit,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Local) Game() *game.Game {
	return l.game
}

func (l *Local) Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{StartingPlayer: playerNumber(l.game.Player1Moves()), StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	seen := map[game.GameFeatures]int{l.game.DefiningFeatures(): 1}
	log.Info().Msgf("%s is starting", l.game.CurrentPlayer().Name)
	log.Debug().Msgf("\n%s", l.game.Board())

	reason := ReasonResult
	for step := 1; !l.game.IsOver(); step++ {
		if step > l.maxMoves {
			reason = ReasonMaxMoves
			break
		}

		player := playerNumber(l.game.Player1Moves())
		um, metric := l.play(step)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         um.String(),
			SearchMetric: metric,
		})

		features := l.game.DefiningFeatures()
		seen[features]++
		log.Debug().Msgf("position %016x seen %d times", uint64(features.Hash()), seen[features])
		if seen[features] >= l.repetitions && !l.game.IsOver() {
			reason = ReasonRepetition
			break
		}
	}

	outcome := Draw
	switch l.game.Result() {
	case game.FirstPlayerWon:
		outcome = FirstPlayerWon
	case game.SecondPlayerWon:
		outcome = SecondPlayerWon
	}

	gameMetric.Outcome = outcome.Score()
	gameMetric.Reason = reason
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	log.Info().Msgf("game over after %d moves: %s (%s)", gameMetric.TotalMoves, outcome, reason)
	return outcome, gameMetric, moveMetrics
}

// play asks the strategy to move until it comes up with a legal move.
func (l *Local) play(step int) (game.UserMove, metrics.SearchMetric) {
	strategy := l.second
	if l.game.Player1Moves() {
		strategy = l.first
	}
	name := l.game.CurrentPlayer().Name

	for attempt := 1; ; attempt++ {
		move, metric := strategy.GetMove(l.game)
		if err := l.game.ValidateMove(move); err != nil {
			log.Warn().Err(err).Msgf("%s proposed an illegal move (attempt %d)", name, attempt)
			if attempt >= maxAttempts {
				panic(fmt.Sprintf("%s failed to propose a legal move %d times", name, maxAttempts))
			}
			continue
		}

		// Surprises move cards, so name the move before playing it
		um := l.game.UserifyMove(move)
		l.game.ApplyMoveUnchecked(move)
		log.Info().Msgf("%d. %s plays %s", step, name, um)
		log.Debug().Msgf("\n%s", l.game.Board())
		return um, metric
	}
}

func playerNumber(player1 bool) int {
	if player1 {
		return 1
	}
	return 2
}
