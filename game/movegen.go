package game

import "golang.org/x/exp/rand"

// GenerateMoves lists the legal moves of the player to move in a fixed
// order: places, fights, die moves, surprises. Submit is never proposed.
func (g *Game) GenerateMoves() []Move {
	if g.result != InProgress {
		return nil
	}
	moves := make([]Move, 0, 32)
	g.visitMoves(g.player1Moves, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// RandomMove picks uniformly among the generated moves.
func (g *Game) RandomMove() (Move, bool) {
	moves := g.GenerateMoves()
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[rand.Intn(len(moves))], true
}

// hasMovesFor reports whether player1 (or player 2) would have a move if it
// were their turn.
func (g *Game) hasMovesFor(player1 bool) bool {
	found := false
	g.visitMoves(player1, func(Move) bool {
		found = true
		return false
	})
	return found
}

// visitMoves calls yield for every legal move of the given player until
// yield returns false.
func (g *Game) visitMoves(player1 bool, yield func(Move) bool) {
	b := g.board
	stock := g.player(player1)

	if g.rules.EnableFight {
		dice := stock.distinctDice()
		for _, c := range b.coords {
			if !b.cards[c].IsEmpty() {
				continue
			}
			for _, d := range dice {
				if !yield(Place(d, c)) {
					return
				}
			}
		}

		for _, c := range b.coords {
			if len(b.cards[c].Dice) <= 1 {
				continue
			}
			if m := Fight(c); g.check(m, player1) == legal && !yield(m) {
				return
			}
		}
	} else if len(stock.Dice) > 0 {
		d := stock.Dice[0]
		for _, c := range b.coords {
			if b.cards[c].IsEmpty() && !yield(Place(d, c)) {
				return
			}
		}
	}

	for _, active := range b.ActiveDice(player1) {
		for _, to := range b.coords {
			m := MoveDie(active.Die, active.Coord, to)
			if g.check(m, player1) == legal && !yield(m) {
				return
			}
		}
	}

	if g.rules.EnableSurprise && *g.surprises(player1) == 0 {
		left, right, top, bottom := b.BoundingBox()
		for _, from := range b.coords {
			for x := int(left) - 1; x <= int(right)+1; x++ {
				for y := int(top) - 1; y <= int(bottom)+1; y++ {
					m := Surprise(from, b.NewCoord(int8(x), int8(y)))
					if g.check(m, player1) == legal && !yield(m) {
						return
					}
				}
			}
		}
	}
}
