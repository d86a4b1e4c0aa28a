package agent

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"rokumon/experiments/metrics"
	"rokumon/game"
	"rokumon/searcher"
)

// searchState lets the generic alpha-beta drive a private copy of a game.
type searchState struct {
	game   *game.Game
	played []played
}

type played struct {
	move  game.Move
	fight *game.FightResult
}

func (s *searchState) Actions(player1 bool) (bool, []game.Move) {
	return s.game.Player1Moves() == player1, s.game.GenerateMoves()
}

func (s *searchState) Execute(m game.Move, player1 bool) int32 {
	fight := s.game.ApplyMoveUnchecked(m)
	s.played = append(s.played, played{move: m, fight: fight})
	return s.game.EvaluateFor(player1)
}

func (s *searchState) Undo() {
	last := s.played[len(s.played)-1]
	s.played = s.played[:len(s.played)-1]
	s.game.UndoMove(last.move, last.fight)
}

func (s *searchState) IsUpperBound(fitness int32, _ bool) bool {
	return fitness == game.MaxFitness
}

func (s *searchState) IsLowerBound(fitness int32, _ bool) bool {
	return fitness == game.MinFitness
}

type alphaBetaAgent struct {
	searcher *searcher.AlphaBeta[bool, game.Move, int32]
}

// NewAlphaBeta plays for player 1 or player 2 with an alpha-beta search
// limited by searcher.WithDepth or searcher.WithDuration.
func NewAlphaBeta(player1 bool, options ...searcher.Option) Strategy {
	return alphaBetaAgent{
		searcher: searcher.NewAlphaBeta[bool, game.Move, int32](player1, options...),
	}
}

func (a alphaBetaAgent) GetMove(g *game.Game) (game.Move, metrics.SearchMetric) {
	state := &searchState{game: g.Clone()}
	line, metric, ok := a.searcher.Search(state)
	if !ok {
		panic("no legal moves for " + g.CurrentPlayer().Name)
	}

	log.Info().Msgf("%s searched %d nodes to depth %d in %v (completed: %t), fitness %d",
		g.CurrentPlayer().Name, metric.Nodes, metric.Depth, metric.Duration, metric.Completed, line.Fitness)
	if e := log.Debug(); e.Enabled() {
		e.Msgf("principal variation: %s", variation(g, line.Path))
	}
	return line.Path[0], metric
}

// variation renders a line in user coordinates with the evaluation after
// each move.
func variation(g *game.Game, path []game.Move) string {
	replay := g.Clone()
	steps := make([]string, 0, len(path))
	for _, m := range path {
		um := replay.UserifyMove(m)
		replay.ApplyMoveUnchecked(m)
		steps = append(steps, um.String()+" ("+formatFitness(replay.EvaluateForFirstPlayer())+")")
	}
	return strings.Join(steps, ", ")
}

func formatFitness(f int32) string {
	switch f {
	case game.MaxFitness:
		return "player 1 wins"
	case game.MinFitness:
		return "player 2 wins"
	}
	return strconv.Itoa(int(f))
}
