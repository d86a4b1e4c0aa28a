package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"rokumon/engine"
	"rokumon/experiments"
	"rokumon/experiments/metrics"
	"rokumon/game"
	"rokumon/logger"
	"rokumon/meta"
	"rokumon/perft"
)

type options struct {
	mode             string
	opponents        string
	cards            string
	layout           string
	shuffle          bool
	fight            bool
	surprise         bool
	perftDepth       int
	perftCache       bool
	aiDepth          int
	aiDuration       time.Duration
	secondAIDepth    int
	secondAIDuration time.Duration
	samples          int
	goroutines       int
	episodes         int
	out              string
	logLevel         string
	seed             uint64
}

func parseFlags() options {
	var o options
	pflag.StringVar(&o.mode, "mode", "play", "play, match, perft or par_perft")
	pflag.StringVar(&o.opponents, "opponents", "airandom", "aiai, airandom, randomai, randomrandom, aimcts or mctsai")
	pflag.StringVar(&o.cards, "cards", envOr("ROKUMON_CARDS", meta.DefaultCards), "card kinds to deal, g/j/f")
	pflag.StringVar(&o.layout, "layout", envOr("ROKUMON_LAYOUT", meta.DefaultLayout), "bricks7, rectangle6 or hex7")
	pflag.BoolVar(&o.shuffle, "shuffle", false, "shuffle the cards before dealing")
	pflag.BoolVarP(&o.fight, "enable-fight", "f", false, "allow fight moves and the mixed dice stocks")
	pflag.BoolVarP(&o.surprise, "enable-surprise", "s", false, "allow one surprise move per player")
	pflag.IntVar(&o.perftDepth, "perft-depth", 4, "deepest perft to count")
	pflag.BoolVar(&o.perftCache, "perft-cache", false, "memoise transposed positions in parallel perft")
	pflag.IntVar(&o.aiDepth, "ai-depth", meta.AI_DEPTH, "search depth of the first AI")
	pflag.DurationVar(&o.aiDuration, "ai-duration", 0, "time per move of the first AI, overrides --ai-depth")
	pflag.IntVar(&o.secondAIDepth, "second-ai-depth", meta.AI_DEPTH, "search depth of the second AI")
	pflag.DurationVar(&o.secondAIDuration, "second-ai-duration", 0, "time per move of the second AI, overrides --second-ai-depth")
	pflag.IntVar(&o.samples, "samples", 10, "games to play in match mode")
	pflag.IntVar(&o.goroutines, "goroutines", meta.GO_ROUTINES, "goroutines for MCTS and parallel perft")
	pflag.IntVar(&o.episodes, "episodes", meta.EPISODES, "MCTS episodes per move")
	pflag.StringVar(&o.out, "out", "", "directory for match CSV records")
	pflag.StringVar(&o.logLevel, "log-level", "", "zerolog level, defaults to LOG_LEVEL or info")
	pflag.Uint64Var(&o.seed, "seed", 0, "seed for shuffling and random play, 0 picks one from the clock")
	pflag.Parse()
	return o
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	o := parseFlags()
	logger.Init(o.logLevel)

	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	game.Seed(seed)
	log.Info().Uint64("seed", seed).Msg("seeded random source")

	newGame, err := o.gameFactory()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game configuration")
	}

	switch o.mode {
	case "perft":
		runPerft(newGame(), o.perftDepth, false)
	case "par_perft":
		opts := []perft.Option{perft.WithWorkers(o.goroutines)}
		if o.perftCache {
			opts = append(opts, perft.WithCache())
		}
		runPerft(newGame(), o.perftDepth, true, opts...)
	case "play":
		first, second, err := o.agents()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid opponents")
		}
		l := engine.NewLocal(newGame(), experiments.NewStrategy(first, true), experiments.NewStrategy(second, false),
			engine.WithMaxMoves(meta.MAX_TURNS), engine.WithRepetitionLimit(meta.REPETITIONS))
		outcome, gameMetric, _ := l.Run()
		fmt.Printf("%s after %d moves (%s)\n%s\n", outcome, gameMetric.TotalMoves, gameMetric.Reason, l.Game().Board())
	case "match":
		first, second, err := o.agents()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid opponents")
		}
		tally, err := experiments.RunMatch(o.opponents, first, second, o.samples, newGame, o.out)
		if err != nil {
			log.Fatal().Err(err).Msg("match failed")
		}
		fmt.Printf("%s: %d wins, %s: %d wins, %d draws\n", first.Kind, tally.Agent1Wins, second.Kind, tally.Agent2Wins, tally.Draws)
	default:
		log.Fatal().Msgf("unknown mode %q", o.mode)
	}
}

func (o options) gameFactory() (func() *game.Game, error) {
	layout, err := game.ParseLayout(o.layout)
	if err != nil {
		return nil, err
	}
	deck, err := game.NewDeck(o.cards)
	if err != nil {
		return nil, err
	}
	if len(deck) != len(layout.Coords) {
		return nil, fmt.Errorf("layout %s needs %d cards, got %q", layout.Name, len(layout.Coords), o.cards)
	}
	rules := game.NewRules(o.fight, o.surprise)

	return func() *game.Game {
		d := append(game.Deck(nil), deck...)
		if o.shuffle {
			d.Shuffle()
		}
		return game.NewGame(layout, d, rules)
	}, nil
}

// agents maps --opponents onto the configs of player 1 and player 2.
func (o options) agents() (metrics.AgentConfig, metrics.AgentConfig, error) {
	kinds := map[string][2]string{
		"aiai":         {experiments.AlphaBeta, experiments.AlphaBeta},
		"airandom":     {experiments.AlphaBeta, experiments.Random},
		"randomai":     {experiments.Random, experiments.AlphaBeta},
		"randomrandom": {experiments.Random, experiments.Random},
		"aimcts":       {experiments.AlphaBeta, experiments.MCTS},
		"mctsai":       {experiments.MCTS, experiments.AlphaBeta},
	}
	pair, ok := kinds[strings.ToLower(o.opponents)]
	if !ok {
		return metrics.AgentConfig{}, metrics.AgentConfig{}, fmt.Errorf("unknown opponents %q", o.opponents)
	}

	first := o.agent(1, pair[0], o.aiDepth, o.aiDuration)
	second := o.agent(2, pair[1], o.aiDepth, o.aiDuration)
	if pair[0] == experiments.AlphaBeta && pair[1] == experiments.AlphaBeta {
		second = o.agent(2, pair[1], o.secondAIDepth, o.secondAIDuration)
	}
	return first, second, nil
}

func (o options) agent(id int, kind string, depth int, duration time.Duration) metrics.AgentConfig {
	config := metrics.AgentConfig{ID: id, Kind: kind}
	switch kind {
	case experiments.AlphaBeta:
		if duration > 0 {
			config.Duration = duration
		} else {
			config.Depth = depth
		}
	case experiments.MCTS:
		config.Goroutines = o.goroutines
		config.Episodes = o.episodes
		config.Cutoff = meta.WITH_CUTOFF
	}
	return config
}

func runPerft(g *game.Game, maxDepth int, parallel bool, opts ...perft.Option) {
	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		var count int
		if parallel {
			count = perft.ParallelPerft(g, depth, opts...)
		} else {
			count = perft.Perft(g, depth)
		}
		elapsed := time.Since(start)
		speed := float64(count) / max(elapsed.Seconds(), 1e-9)

		log.Info().Int("depth", depth).Int("count", count).Dur("time", elapsed).Msg("perft")
		fmt.Printf("perft(%d): %d, time: %v, speed: %.0f moves/s\n", depth, count, elapsed, speed)
	}
}
