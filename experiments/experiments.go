package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"rokumon/engine"
	"rokumon/experiments/metrics"
	"rokumon/game"
	"rokumon/searcher"
	"rokumon/searcher/agent"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
)

// Agent kinds
const (
	AlphaBeta = "alphabeta"
	MCTS      = "mcts"
	Random    = "random"
)

// Tally counts games by the agent that won them, whichever side it played.
type Tally struct {
	Agent1Wins int
	Agent2Wins int
	Draws      int
}

func (t Tally) Games() int {
	return t.Agent1Wins + t.Agent2Wins + t.Draws
}

// Experiment is a series of match ups played on fresh games. Agents swap
// sides every game, starting with the first agent of a match up as player 1.
type Experiment struct {
	Name     string
	Games    int
	NewGame  func() *game.Game
	OutDir   string // Results are only written if set
	Engine   []engine.Option
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

// RunMatch plays games between two agents.
func RunMatch(name string, agent1, agent2 metrics.AgentConfig, games int, newGame func() *game.Game, outDir string) (Tally, error) {
	tallies, err := Experiment{
		Name:     name,
		Games:    games,
		NewGame:  newGame,
		OutDir:   outDir,
		Configs:  []metrics.AgentConfig{agent1, agent2},
		MatchUps: [][2]metrics.AgentConfig{{agent1, agent2}},
	}.Run()
	if err != nil {
		return Tally{}, err
	}
	return tallies[0], nil
}

// DepthExperiment pits alpha-beta at growing depths against a random agent.
func DepthExperiment(newGame func() *game.Game, outDir string) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: Random}
	configs := []metrics.AgentConfig{baseline}
	var matchUps [][2]metrics.AgentConfig
	for depth := 1; depth <= 3; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: AlphaBeta, Depth: depth}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}
	return Experiment{Name: "alphabeta_depth", Games: NumGames, NewGame: newGame, OutDir: outDir, Configs: configs, MatchUps: matchUps}
}

// ParallelizationExperiment pairs MCTS agents with more goroutines against
// the sequential baseline under the same time budget.
func ParallelizationExperiment(newGame func() *game.Game, outDir string) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: MCTS, Goroutines: 1, Duration: TimeBudget}
	configs := []metrics.AgentConfig{baseline}
	var matchUps [][2]metrics.AgentConfig
	for i, goroutines := range []int{2, 4, 8, 16} {
		config := metrics.AgentConfig{ID: i + 1, Kind: MCTS, Goroutines: goroutines, Duration: TimeBudget}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{Name: "mcts_parallelization", Games: NumGames, NewGame: newGame, OutDir: outDir, Configs: configs, MatchUps: matchUps}
}

// Run returns one tally per match up.
func (e Experiment) Run() ([]Tally, error) {
	count := 0
	tallies := make([]Tally, len(e.MatchUps))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", e.Name)

	for mi, matchup := range e.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(e.MatchUps), matchup[0], matchup[1])

		for i := 0; i < e.Games; i++ {
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}

			outcome, gameMetric, moveMetrics := e.runGame(first, second)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}

			switch {
			case outcome == engine.Draw:
				tallies[mi].Draws++
			case (outcome == engine.FirstPlayerWon) == (i%2 == 0):
				tallies[mi].Agent1Wins++
			default:
				tallies[mi].Agent2Wins++
			}
			log.Info().Msgf("completed matchup %d of %d game %d: %s (%s)", mi+1, len(e.MatchUps), i+1, outcome, gameMetric.Reason)
		}
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(e.MatchUps), tallies[mi])
	}

	log.Info().Msgf("completed %s experiment", e.Name)

	if e.OutDir == "" {
		return tallies, nil
	}
	return tallies, e.store(gameRecords, moveRecords)
}

func (e Experiment) store(gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(e.OutDir, e.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(e.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored run %s in %s", writer.RunID(), writer.Dir())
	return nil
}

func (e Experiment) runGame(config1, config2 metrics.AgentConfig) (engine.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	l := engine.NewLocal(e.NewGame(), NewStrategy(config1, true), NewStrategy(config2, false), e.Engine...)
	return l.Run()
}

// NewStrategy builds the agent described by config to play one side.
func NewStrategy(config metrics.AgentConfig, player1 bool) agent.Strategy {
	switch config.Kind {
	case AlphaBeta:
		return agent.NewAlphaBeta(player1, searcherOptions(config)...)
	case MCTS:
		options := append(searcherOptions(config), searcher.WithMetrics())
		return agent.NewMCTS(searcher.NewMCTS(config.Goroutines, options...))
	case Random:
		return agent.NewRandom()
	}
	panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
}

func searcherOptions(config metrics.AgentConfig) []searcher.Option {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	return options
}
