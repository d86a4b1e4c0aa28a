package game

import (
	"fmt"
	"slices"
	"strings"
)

// Layout is the pattern of cells a deck is dealt onto.
type Layout struct {
	Name   string
	Grid   Grid
	Coords []Coord
}

// Bricks7 is two hex rows, three cards on top and four below.
func Bricks7() Layout {
	coords := make([]Coord, 0, 7)
	for y := int8(-1); y <= 0; y++ {
		for x := -y; x < 4; x++ {
			coords = append(coords, NewHex(x, y))
		}
	}
	return Layout{Name: "bricks7", Grid: Hex, Coords: coords}
}

// Rectangle6 is two square rows of three cards.
func Rectangle6() Layout {
	coords := make([]Coord, 0, 6)
	for y := int8(-1); y <= 0; y++ {
		for x := int8(0); x < 3; x++ {
			coords = append(coords, NewSquare(x, y))
		}
	}
	return Layout{Name: "rectangle6", Grid: Square, Coords: coords}
}

// Hex7 is a ring of six hex cards around a central one.
func Hex7() Layout {
	return Layout{Name: "hex7", Grid: Hex, Coords: []Coord{
		NewHex(1, -1), NewHex(2, -1),
		NewHex(0, 0), NewHex(1, 0), NewHex(2, 0),
		NewHex(0, 1), NewHex(1, 1),
	}}
}

// CustomLayout deals cards onto the given cells in coordinate order.
func CustomLayout(grid Grid, coords []Coord) Layout {
	sorted := slices.Clone(coords)
	slices.SortFunc(sorted, Coord.Compare)
	sorted = slices.Compact(sorted)
	return Layout{Name: "custom", Grid: grid, Coords: sorted}
}

func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bricks7", "b7":
		return Bricks7(), nil
	case "rectangle6", "r6":
		return Rectangle6(), nil
	case "hex7", "h7":
		return Hex7(), nil
	default:
		return Layout{}, fmt.Errorf("unknown layout %q", s)
	}
}

type Triple [3]Coord

// PlacedDie is the uncovered die of a card together with its position.
type PlacedDie struct {
	Coord Coord
	Die   Die
}

type Board struct {
	grid    Grid
	cards   map[Coord]*Card
	coords  []Coord // sorted by Coord.Compare
	triples []Triple
}

// NewBoard deals the deck onto the layout. It panics if their sizes differ.
func NewBoard(layout Layout, deck Deck) *Board {
	if len(layout.Coords) != len(deck) {
		panic(&ConstructionError{Reason: fmt.Sprintf(
			"layout %s has %d cells but the deck has %d cards", layout.Name, len(layout.Coords), len(deck))})
	}

	b := &Board{
		grid:   layout.Grid,
		cards:  make(map[Coord]*Card, len(deck)),
		coords: make([]Coord, 0, len(deck)),
	}
	for i, c := range layout.Coords {
		if _, ok := b.cards[c]; ok {
			panic(&ConstructionError{Reason: fmt.Sprintf("layout %s repeats cell %s", layout.Name, c)})
		}
		b.cards[c] = NewCard(deck[i])
		b.coords = append(b.coords, c)
	}
	slices.SortFunc(b.coords, Coord.Compare)
	b.RefreshAdjTriples()
	return b
}

func (b *Board) Grid() Grid {
	return b.grid
}

func (b *Board) NewCoord(x, y int8) Coord {
	if b.grid == Square {
		return NewSquare(x, y)
	}
	return NewHex(x, y)
}

// RefreshAdjTriples rebuilds the winning line candidates into a new slice,
// so slices returned by Triples before the refresh keep their contents. It
// must run whenever the set of occupied cells changes.
func (b *Board) RefreshAdjTriples() {
	triples := make([]Triple, 0, len(b.triples))
	n := len(b.coords)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				p, q, r := b.coords[i], b.coords[j], b.coords[k]
				if AreThreeInLine(b.grid, p, q, r) && AreThreeAdjacent(b.grid, p, q, r) {
					triples = append(triples, Triple{p, q, r})
				}
			}
		}
	}
	b.triples = triples
}

func (b *Board) Triples() []Triple {
	return b.triples
}

// TriplesContaining counts the winning line candidates passing through c.
func (b *Board) TriplesContaining(c Coord) int {
	count := 0
	for _, t := range b.triples {
		if t[0] == c || t[1] == c || t[2] == c {
			count++
		}
	}
	return count
}

// Coords returns the occupied cells in coordinate order. Callers must not
// modify the slice.
func (b *Board) Coords() []Coord {
	return b.coords
}

func (b *Board) Len() int {
	return len(b.coords)
}

// CardAt returns nil when there is no card at c.
func (b *Board) CardAt(c Coord) *Card {
	return b.cards[c]
}

func (b *Board) HasEmptyCardAt(c Coord) bool {
	card, ok := b.cards[c]
	return ok && card.IsEmpty()
}

func (b *Board) EmptyCoords() []Coord {
	var empty []Coord
	for _, c := range b.coords {
		if b.cards[c].IsEmpty() {
			empty = append(empty, c)
		}
	}
	return empty
}

// ActiveDice lists the uncovered dice owned by the given player.
func (b *Board) ActiveDice(player1 bool) []PlacedDie {
	var active []PlacedDie
	for _, c := range b.coords {
		if d, ok := b.cards[c].TopDie(); ok && d.BelongsToPlayer1() == player1 {
			active = append(active, PlacedDie{Coord: c, Die: d})
		}
	}
	return active
}

// NeighboursWithout counts the cards adjacent to pos, ignoring the card at
// without.
func (b *Board) NeighboursWithout(pos, without Coord) int {
	count := 0
	for _, c := range b.coords {
		if c != without && Distance(b.grid, pos, c) == 1 {
			count++
		}
	}
	return count
}

// BoundingBox returns the inclusive x and y ranges of the occupied cells.
func (b *Board) BoundingBox() (left, right, top, bottom int8) {
	if len(b.coords) == 0 {
		return 0, 0, 0, 0
	}
	first := b.coords[0]
	left, right, top, bottom = first.X, first.X, first.Y, first.Y
	for _, c := range b.coords[1:] {
		left, right = min(left, c.X), max(right, c.X)
		top, bottom = min(top, c.Y), max(bottom, c.Y)
	}
	return left, right, top, bottom
}

// Rows returns the distinct y values in ascending order.
func (b *Board) Rows() []int8 {
	rows := make([]int8, 0, 4)
	for _, c := range b.coords {
		rows = append(rows, c.Y)
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}

// Row returns the cells of row y ordered left to right.
func (b *Board) Row(y int8) []Coord {
	var row []Coord
	for _, c := range b.coords {
		if c.Y == y {
			row = append(row, c)
		}
	}
	slices.SortFunc(row, func(p, q Coord) int { return int(p.X) - int(q.X) })
	return row
}

func (b *Board) relocate(from, to Coord) {
	card, ok := b.cards[from]
	if !ok {
		panic(fmt.Sprintf("no card at %s to relocate", from))
	}
	delete(b.cards, from)
	b.cards[to] = card

	i, _ := slices.BinarySearchFunc(b.coords, from, Coord.Compare)
	b.coords = slices.Delete(b.coords, i, i+1)
	j, _ := slices.BinarySearchFunc(b.coords, to, Coord.Compare)
	b.coords = slices.Insert(b.coords, j, to)
	b.RefreshAdjTriples()
}

func (b *Board) clone() *Board {
	cards := make(map[Coord]*Card, len(b.cards))
	for c, card := range b.cards {
		cards[c] = card.clone()
	}
	return &Board{
		grid:    b.grid,
		cards:   cards,
		coords:  slices.Clone(b.coords),
		triples: slices.Clone(b.triples),
	}
}

// ConvertCoordinates maps a user (row, card) address onto the board.
func (b *Board) ConvertCoordinates(uc UserCoord) (Coord, error) {
	if uc.Row < 1 || uc.Card < 1 {
		return Coord{}, &ConversionError{Coord: uc, Reason: "rows and cards are numbered from 1"}
	}
	rows := b.Rows()
	if uc.Row > len(rows) {
		return Coord{}, &ConversionError{Coord: uc, Reason: fmt.Sprintf("the board has %d rows", len(rows))}
	}
	row := b.Row(rows[uc.Row-1])
	if uc.Card > len(row) {
		return Coord{}, &ConversionError{Coord: uc, Reason: fmt.Sprintf("row %d has %d cards", uc.Row, len(row))}
	}
	return row[uc.Card-1], nil
}

// ConvertToUser is the inverse of ConvertCoordinates for occupied cells.
func (b *Board) ConvertToUser(c Coord) UserCoord {
	rows := b.Rows()
	r := slices.Index(rows, c.Y)
	card := slices.Index(b.Row(c.Y), c)
	return UserCoord{Row: r + 1, Card: card + 1}
}

func (b *Board) String() string {
	var sb strings.Builder
	for i, y := range b.Rows() {
		fmt.Fprintf(&sb, "%d:", i+1)
		for _, c := range b.Row(y) {
			fmt.Fprintf(&sb, " %s", b.cards[c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
