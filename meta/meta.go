// Package meta holds the defaults of the command line.
package meta

// DefaultCards are the card kinds dealt when no deck is given.
const DefaultCards = "gggjjjj"

// DefaultLayout is the board used when no layout is given.
const DefaultLayout = "bricks7"

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 100

// MAX_TURNS ends a game as a draw.
const MAX_TURNS = 300

// REPETITIONS ends a game as a draw once a position is seen this often.
const REPETITIONS = 3

const AI_DEPTH = 4
