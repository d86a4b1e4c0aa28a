package searcher

import "math"

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for losing outcome, also the virtual loss

// uct scores the children of one parent, sharing c² ln N between them.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, parentVisits float64) *uct {
	if parentVisits < 1 {
		parentVisits = 1
	}
	return &uct{numerator: cSquared * math.Log(parentVisits)}
}

func (u *uct) evaluate(rewards, visits float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/visits + math.Sqrt(u.numerator/visits)
}
