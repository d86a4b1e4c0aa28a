package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rokumon/engine"
	"rokumon/experiments/metrics"
	"rokumon/game"
)

func newGame() *game.Game {
	return game.NewGame(game.Bricks7(), game.SevenShuffled(), game.DefaultRules())
}

func TestRunMatch(t *testing.T) {
	t.Run("random against alpha-beta", func(t *testing.T) {
		dir := t.TempDir()
		random := metrics.AgentConfig{ID: 1, Kind: Random}
		alphaBeta := metrics.AgentConfig{ID: 2, Kind: AlphaBeta, Depth: 1}

		tally, err := RunMatch("smoke", random, alphaBeta, 4, newGame, dir)

		require.NoError(t, err)
		require.Equal(t, 4, tally.Games())

		runs, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, runs, 1, "One run directory should be created")
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(dir, runs[0].Name(), name))
		}
	})

	t.Run("nothing written without an output directory", func(t *testing.T) {
		random := metrics.AgentConfig{ID: 1, Kind: Random}

		tally, err := RunMatch("smoke", random, random, 2, newGame, "")

		require.NoError(t, err)
		require.Equal(t, 2, tally.Games())
	})
}

func TestExperimentRun(t *testing.T) {
	random := metrics.AgentConfig{ID: 0, Kind: Random}
	e := Experiment{
		Name:     "limits",
		Games:    2,
		NewGame:  newGame,
		Engine:   []engine.Option{engine.WithMaxMoves(1)},
		Configs:  []metrics.AgentConfig{random},
		MatchUps: [][2]metrics.AgentConfig{{random, random}, {random, random}},
	}

	tallies, err := e.Run()

	require.NoError(t, err)
	require.Len(t, tallies, 2)
	for _, tally := range tallies {
		require.Equal(t, Tally{Draws: 2}, tally, "One move cannot decide a game")
	}
}

func TestPredefinedExperiments(t *testing.T) {
	depth := DepthExperiment(newGame, "")
	require.Len(t, depth.Configs, 4)
	require.Len(t, depth.MatchUps, 3)
	require.Equal(t, 3, depth.MatchUps[2][0].Depth)

	parallel := ParallelizationExperiment(newGame, "")
	require.Len(t, parallel.MatchUps, 4)
	for _, matchUp := range parallel.MatchUps {
		require.Equal(t, 1, matchUp[0].Goroutines, "The baseline is sequential")
	}
}

func TestNewStrategy(t *testing.T) {
	require.NotNil(t, NewStrategy(metrics.AgentConfig{Kind: MCTS, Goroutines: 2, Episodes: 10}, true))
	require.NotNil(t, NewStrategy(metrics.AgentConfig{Kind: AlphaBeta, Depth: 1}, false))
	require.Panics(t, func() { NewStrategy(metrics.AgentConfig{Kind: "oracle"}, true) })
}
