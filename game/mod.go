package game

type StateHash uint64

// Evaluate scores a position between -1 and 1 from the perspective of the
// player to move.
type Evaluate func(*Game) float64
