package game

import (
	"fmt"
	"slices"

	"rokumon/utils"
)

type Result int

const (
	InProgress Result = iota
	FirstPlayerWon
	SecondPlayerWon
)

func (r Result) String() string {
	switch r {
	case FirstPlayerWon:
		return "first player won"
	case SecondPlayerWon:
		return "second player won"
	default:
		return "in progress"
	}
}

// Game is a single match. It is not safe for concurrent use: perft and the
// searchers mutate it in place through ApplyMoveUnchecked and UndoMove, and
// parallel callers work on their own Clone.
type Game struct {
	board            *Board
	rules            Rules
	player1          *Player
	player2          *Player
	player1Moves     bool
	player1Surprises uint8
	player2Surprises uint8
	result           Result
	history          []Move
}

// NewGame panics with a *ConstructionError if the deck does not fit the
// layout.
func NewGame(layout Layout, deck Deck, rules Rules) *Game {
	return &Game{
		board:        NewBoard(layout, deck),
		rules:        rules,
		player1:      NewPlayer1(rules),
		player2:      NewPlayer2(rules),
		player1Moves: true,
		result:       InProgress,
	}
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Player1() *Player {
	return g.player1
}

func (g *Game) Player2() *Player {
	return g.player2
}

// Player1Moves reports whether player 1 is to move.
func (g *Game) Player1Moves() bool {
	return g.player1Moves
}

func (g *Game) CurrentPlayer() *Player {
	return g.player(g.player1Moves)
}

func (g *Game) Surprises(player1 bool) int {
	if player1 {
		return int(g.player1Surprises)
	}
	return int(g.player2Surprises)
}

func (g *Game) Result() Result {
	return g.result
}

func (g *Game) IsOver() bool {
	return g.result != InProgress
}

// History lists the applied moves, oldest first.
func (g *Game) History() []Move {
	return g.history
}

func (g *Game) player(player1 bool) *Player {
	if player1 {
		return g.player1
	}
	return g.player2
}

func (g *Game) surprises(player1 bool) *uint8 {
	if player1 {
		return &g.player1Surprises
	}
	return &g.player2Surprises
}

// Clone returns a deep copy sharing no mutable state with g.
func (g *Game) Clone() *Game {
	return &Game{
		board:            g.board.clone(),
		rules:            g.rules,
		player1:          g.player1.clone(),
		player2:          g.player2.clone(),
		player1Moves:     g.player1Moves,
		player1Surprises: g.player1Surprises,
		player2Surprises: g.player2Surprises,
		result:           g.result,
		history:          slices.Clone(g.history),
	}
}

// ValidateMove checks m against the position without changing it.
func (g *Game) ValidateMove(m Move) error {
	if v := g.check(m, g.player1Moves); v != legal {
		return &ValidationError{Move: m.String(), Reason: g.explain(v, m, g.player1Moves)}
	}
	return nil
}

// violation is the first rule a move breaks. Move generation only needs
// the code, the text is built by explain for ValidateMove.
type violation uint8

const (
	legal violation = iota
	gameOver
	noStock
	noCardTo
	notEmpty
	noCardFrom
	emptyFrom
	notUncovered
	opponentsDie
	sameKind
	foreignPair
	fightDisabled
	notAPair
	noOwnDie
	surpriseDisabled
	occupied
	isolated
	surpriseUsed
)

func (g *Game) check(m Move, player1 bool) violation {
	if g.result != InProgress {
		return gameOver
	}

	switch m.Kind {
	case KindPlace:
		if !g.player(player1).Has(m.Die) {
			return noStock
		}
		card := g.board.CardAt(m.To)
		if card == nil {
			return noCardTo
		}
		if !card.IsEmpty() {
			return notEmpty
		}

	case KindMove:
		from, to := g.board.CardAt(m.From), g.board.CardAt(m.To)
		if from == nil {
			return noCardFrom
		}
		if to == nil {
			return noCardTo
		}
		top, ok := from.TopDie()
		if !ok {
			return emptyFrom
		}
		if top != m.Die {
			return notUncovered
		}
		if top.BelongsToPlayer1() != player1 {
			return opponentsDie
		}
		if from.Kind == to.Kind {
			return sameKind
		}
		if len(to.Dice) >= 2 && countOwned(to.Dice, player1) != len(to.Dice) {
			return foreignPair
		}

	case KindFight:
		if !g.rules.EnableFight {
			return fightDisabled
		}
		card := g.board.CardAt(m.To)
		if card == nil {
			return noCardTo
		}
		if len(card.Dice) != 2 {
			return notAPair
		}
		if countOwned(card.Dice, player1) == 0 {
			return noOwnDie
		}

	case KindSurprise:
		if !g.rules.EnableSurprise {
			return surpriseDisabled
		}
		if g.board.CardAt(m.From) == nil {
			return noCardFrom
		}
		if g.board.CardAt(m.Dest) != nil {
			return occupied
		}
		if g.board.NeighboursWithout(m.Dest, m.From) < 2 {
			return isolated
		}
		if *g.surprises(player1) >= 1 {
			return surpriseUsed
		}

	case KindSubmit:
	}
	return legal
}

func countOwned(dice []Die, player1 bool) int {
	return utils.Count(dice, func(d Die) bool { return d.BelongsToPlayer1() == player1 })
}

// explain describes v for the position m was checked against.
func (g *Game) explain(v violation, m Move, player1 bool) string {
	switch v {
	case gameOver:
		return fmt.Sprintf("the game is over (%s)", g.result)
	case noStock:
		return fmt.Sprintf("%s has no %s in stock", g.player(player1).Name, m.Die)
	case noCardTo:
		return fmt.Sprintf("there is no card at %s", m.To)
	case notEmpty:
		return fmt.Sprintf("the card at %s is not empty", m.To)
	case noCardFrom:
		return fmt.Sprintf("there is no card at %s", m.From)
	case emptyFrom:
		return fmt.Sprintf("the card at %s is empty", m.From)
	case notUncovered:
		return fmt.Sprintf("%s is not the uncovered die at %s", m.Die, m.From)
	case opponentsDie:
		return fmt.Sprintf("%s belongs to the opponent", m.Die)
	case sameKind:
		return fmt.Sprintf("cannot move between two %s cards", g.board.CardAt(m.From).Kind)
	case foreignPair:
		return "cannot stack onto a pair that is not fully yours"
	case fightDisabled:
		return "fight moves are disabled"
	case notAPair:
		return fmt.Sprintf("a fight needs exactly two dice, %s has %d", m.To, len(g.board.CardAt(m.To).Dice))
	case noOwnDie:
		return fmt.Sprintf("none of the dice at %s are yours", m.To)
	case surpriseDisabled:
		return "surprise moves are disabled"
	case occupied:
		return fmt.Sprintf("%s is already occupied", m.Dest)
	case isolated:
		return fmt.Sprintf("%s needs at least two neighbouring cards", m.Dest)
	case surpriseUsed:
		return "the surprise move has already been used"
	}
	return ""
}

// ApplyMove validates m and plays it. The game is unchanged on error.
func (g *Game) ApplyMove(m Move) (*FightResult, error) {
	if err := g.ValidateMove(m); err != nil {
		return nil, err
	}
	return g.ApplyMoveUnchecked(m), nil
}

// ApplyMoveUnchecked plays a move already known to be legal. The returned
// fight result is non-nil for fights and must be handed back to UndoMove.
func (g *Game) ApplyMoveUnchecked(m Move) *FightResult {
	var fight *FightResult

	switch m.Kind {
	case KindPlace:
		g.CurrentPlayer().removeDie(m.Die)
		g.board.CardAt(m.To).push(m.Die)
		g.result = g.evaluateResult()

	case KindMove:
		d := g.board.CardAt(m.From).pop()
		// Uncovering a line wins even if the die lands elsewhere.
		inFlight := g.threeInARow()
		g.board.CardAt(m.To).push(d)
		if inFlight != InProgress {
			g.result = inFlight
		} else {
			g.result = g.evaluateResult()
		}

	case KindFight:
		card := g.board.CardAt(m.To)
		top, bottom := card.pop(), card.pop()
		winner, loser, swapped := CompareDice(top, bottom)
		card.push(winner)
		g.player(loser.BelongsToPlayer1()).addDie(loser)

		position := Bottom
		if swapped {
			position = Top
		}
		fight = &FightResult{LosingDie: loser, LosingPosition: position}
		g.result = g.evaluateResult()

	case KindSurprise:
		g.board.relocate(m.From, m.Dest)
		*g.surprises(g.player1Moves)++
		g.result = g.evaluateResult()

	case KindSubmit:
		if g.player1Moves {
			g.result = SecondPlayerWon
		} else {
			g.result = FirstPlayerWon
		}
	}

	g.player1Moves = !g.player1Moves
	g.history = append(g.history, m)
	return fight
}

// UndoMove reverts m, the last move applied, including its history entry.
func (g *Game) UndoMove(m Move, fight *FightResult) {
	if len(g.history) == 0 {
		panic("undo with empty history")
	}
	g.history = g.history[:len(g.history)-1]
	g.player1Moves = !g.player1Moves

	switch m.Kind {
	case KindPlace:
		d := g.board.CardAt(m.To).pop()
		g.CurrentPlayer().addDie(d)

	case KindMove:
		d := g.board.CardAt(m.To).pop()
		g.board.CardAt(m.From).push(d)

	case KindFight:
		if fight == nil {
			panic("undo of a fight needs its fight result")
		}
		loser := fight.LosingDie
		g.player(loser.BelongsToPlayer1()).removeDie(loser)
		card := g.board.CardAt(m.To)
		i := 0
		if fight.LosingPosition == Top {
			i = 1
		}
		card.Dice = slices.Insert(card.Dice, i, loser)

	case KindSurprise:
		g.board.relocate(m.Dest, m.From)
		*g.surprises(g.player1Moves)--

	case KindSubmit:
		g.result = InProgress
		return
	}

	g.result = g.resultWithoutNoMoves()
}

// evaluateResult checks three in a stack, then three in a row, then
// whether the player about to move is stuck.
func (g *Game) evaluateResult() Result {
	if r := g.resultWithoutNoMoves(); r != InProgress {
		return r
	}
	return g.noMovesResult(!g.player1Moves)
}

func (g *Game) resultWithoutNoMoves() Result {
	if r := g.threeInStack(); r != InProgress {
		return r
	}
	return g.threeInARow()
}

func (g *Game) noMovesResult(player1 bool) Result {
	if g.hasMovesFor(player1) {
		return InProgress
	}
	if player1 {
		return SecondPlayerWon
	}
	return FirstPlayerWon
}

func (g *Game) threeInStack() Result {
	for _, c := range g.board.coords {
		card := g.board.cards[c]
		if len(card.Dice) > 2 {
			return winnerOf(card.Dice[0])
		}
	}
	return InProgress
}

func (g *Game) threeInARow() Result {
	for _, t := range g.board.triples {
		d1, ok1 := g.board.cards[t[0]].TopDie()
		d2, ok2 := g.board.cards[t[1]].TopDie()
		d3, ok3 := g.board.cards[t[2]].TopDie()
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		p1 := d1.BelongsToPlayer1()
		if d2.BelongsToPlayer1() == p1 && d3.BelongsToPlayer1() == p1 {
			return winnerOf(d1)
		}
	}
	return InProgress
}

func winnerOf(d Die) Result {
	if d.BelongsToPlayer1() {
		return FirstPlayerWon
	}
	return SecondPlayerWon
}

// ConvertMoveCoords translates a user move into board coordinates.
func (g *Game) ConvertMoveCoords(um UserMove) (Move, error) {
	m := Move{Kind: um.Kind, Die: um.Die, Dest: um.Dest}
	var err error
	switch um.Kind {
	case KindPlace, KindFight:
		m.To, err = g.board.ConvertCoordinates(um.To)
	case KindMove:
		if m.From, err = g.board.ConvertCoordinates(um.From); err == nil {
			m.To, err = g.board.ConvertCoordinates(um.To)
		}
	case KindSurprise:
		m.From, err = g.board.ConvertCoordinates(um.From)
	}
	if err != nil {
		return Move{}, err
	}
	return m, nil
}

// UserifyMove is the inverse of ConvertMoveCoords.
func (g *Game) UserifyMove(m Move) UserMove {
	um := UserMove{Kind: m.Kind, Die: m.Die, Dest: m.Dest}
	switch m.Kind {
	case KindPlace, KindFight:
		um.To = g.board.ConvertToUser(m.To)
	case KindMove:
		um.From = g.board.ConvertToUser(m.From)
		um.To = g.board.ConvertToUser(m.To)
	case KindSurprise:
		um.From = g.board.ConvertToUser(m.From)
	}
	return um
}
