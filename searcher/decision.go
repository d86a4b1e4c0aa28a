package searcher

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"rokumon/game"
)

// decision is a node of the MCTS tree. Its statistics are kept from the
// point of view of the player whose move led to it.
type decision struct {
	sync.RWMutex
	parent     *decision
	player1    bool
	unexplored []game.Move
	explored   []game.Move
	children   []*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, g *game.Game) *decision {
	moves := g.GenerateMoves()
	rand.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	return &decision{
		parent:     parent,
		player1:    !g.Player1Moves(),
		unexplored: moves,
		explored:   make([]game.Move, 0, len(moves)),
		children:   make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand plays the chosen move on g and returns the child reached.
// The boolean is true if an existing child was selected, in which case the
// descent continues from it. A terminal node returns itself.
func (d *decision) SelectOrExpand(g *game.Game) (*decision, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.children) == 0 { // Terminal node
		return d, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		last := len(d.unexplored) - 1
		move := d.unexplored[last]
		d.unexplored = d.unexplored[:last]

		g.ApplyMoveUnchecked(move)
		child := newDecision(d, g)
		d.explored = append(d.explored, move)
		d.children = append(d.children, child)
		child.applyLoss()
		return child, false
	}

	// Fully expanded node
	i := d.pickChild()
	g.ApplyMoveUnchecked(d.explored[i])
	child := d.children[i]
	child.applyLoss()
	return child, true
}

func (d *decision) pickChild() int {
	u := newUCT(CSquared, d.visits)

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(u)
		if math.IsInf(score, 1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) score(u *uct) float64 {
	d.RLock()
	defer d.RUnlock()

	return u.evaluate(d.rewards, d.visits)
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

// Backup records an outcome scored for player 1 and returns the parent.
func (d *decision) Backup(score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	if d.player1 {
		d.rewards += score
	} else {
		d.rewards -= score
	}
	d.visits++

	return d.parent
}

func (d *decision) Value() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy maps every explored move to the visit count of its child.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(d.children))
	for i, child := range d.children {
		policy[d.explored[i]] = child.Value()
	}
	return policy
}
