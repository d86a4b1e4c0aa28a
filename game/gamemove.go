package game

import "fmt"

type MoveKind int

const (
	KindPlace MoveKind = iota
	KindMove
	KindFight
	KindSurprise
	KindSubmit
)

func (k MoveKind) String() string {
	switch k {
	case KindPlace:
		return "place"
	case KindMove:
		return "move"
	case KindFight:
		return "fight"
	case KindSurprise:
		return "surprise"
	default:
		return "submit"
	}
}

// GameMove is a move addressed in some coordinate system C, internal Coord
// for the engine and UserCoord for people.
//
//	Place:    Die at To
//	Move:     Die from From to To
//	Fight:    at To
//	Surprise: card at From to Dest
//	Submit:   no operands
//
// Dest is always an internal coordinate because the destination of a
// surprise has no card yet.
type GameMove[C comparable] struct {
	Kind MoveKind
	Die  Die
	From C
	To   C
	Dest Coord
}

type (
	Move     = GameMove[Coord]
	UserMove = GameMove[UserCoord]
)

func Place[C comparable](d Die, to C) GameMove[C] {
	return GameMove[C]{Kind: KindPlace, Die: d, To: to}
}

func MoveDie[C comparable](d Die, from, to C) GameMove[C] {
	return GameMove[C]{Kind: KindMove, Die: d, From: from, To: to}
}

func Fight[C comparable](at C) GameMove[C] {
	return GameMove[C]{Kind: KindFight, To: at}
}

func Surprise[C comparable](from C, dest Coord) GameMove[C] {
	return GameMove[C]{Kind: KindSurprise, From: from, Dest: dest}
}

func Submit[C comparable]() GameMove[C] {
	return GameMove[C]{Kind: KindSubmit}
}

func (m GameMove[C]) String() string {
	switch m.Kind {
	case KindPlace:
		return fmt.Sprintf("place %s at %v", m.Die, m.To)
	case KindMove:
		return fmt.Sprintf("move %s from %v to %v", m.Die, m.From, m.To)
	case KindFight:
		return fmt.Sprintf("fight at %v", m.To)
	case KindSurprise:
		return fmt.Sprintf("surprise from %v to %s", m.From, m.Dest)
	default:
		return "submit"
	}
}

// ZIndex tells which slot of a fought stack the loser came from.
type ZIndex int

const (
	Bottom ZIndex = iota
	Top
)

// FightResult is the undo token of a fight.
type FightResult struct {
	LosingDie      Die
	LosingPosition ZIndex
}
