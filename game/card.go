package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

type DiceColor int

const (
	Red DiceColor = iota
	Black
	White
)

func (c DiceColor) String() string {
	switch c {
	case Red:
		return "r"
	case Black:
		return "b"
	default:
		return "w"
	}
}

type Die struct {
	Color DiceColor
	Value uint8
}

func NewDie(color DiceColor, value uint8) Die {
	return Die{Color: color, Value: value}
}

// BelongsToPlayer1 reports the die's owner: red dice are player 1's, black
// and white dice are player 2's.
func (d Die) BelongsToPlayer1() bool {
	return d.Color == Red
}

func (d Die) Compare(o Die) int {
	if d.Color != o.Color {
		return int(d.Color) - int(o.Color)
	}
	return int(d.Value) - int(o.Value)
}

func (d Die) String() string {
	return fmt.Sprintf("%s%d", d.Color, d.Value)
}

// CompareDice decides a fight between the top and the bottom die of a stack.
// swapped is true when the bottom die wins.
func CompareDice(top, bottom Die) (winner, loser Die, swapped bool) {
	switch {
	case beatsRedSix(top, bottom):
		return top, bottom, false
	case beatsRedSix(bottom, top):
		return bottom, top, true
	case top.Value > bottom.Value:
		return top, bottom, false
	default:
		return bottom, top, true
	}
}

func beatsRedSix(white, red Die) bool {
	return white.Color == White && white.Value == 1 && red.Color == Red && red.Value == 6
}

type CardKind int

const (
	Gold CardKind = iota
	Jade
	Fort
)

func (k CardKind) String() string {
	switch k {
	case Gold:
		return "Gold"
	case Jade:
		return "Jade"
	default:
		return "Fort"
	}
}

// Card holds a stack of dice, bottom first.
type Card struct {
	Kind CardKind
	Dice []Die
}

func NewCard(kind CardKind) *Card {
	return &Card{Kind: kind}
}

func (c *Card) IsEmpty() bool {
	return len(c.Dice) == 0
}

// TopDie returns the uncovered die of the stack.
func (c *Card) TopDie() (Die, bool) {
	if len(c.Dice) == 0 {
		return Die{}, false
	}
	return c.Dice[len(c.Dice)-1], true
}

func (c *Card) push(d Die) {
	c.Dice = append(c.Dice, d)
}

func (c *Card) pop() Die {
	if len(c.Dice) == 0 {
		panic(fmt.Sprintf("pop from empty %s card", c.Kind))
	}
	d := c.Dice[len(c.Dice)-1]
	c.Dice = c.Dice[:len(c.Dice)-1]
	return d
}

func (c *Card) clone() *Card {
	dice := make([]Die, len(c.Dice), max(len(c.Dice), 3))
	copy(dice, c.Dice)
	return &Card{Kind: c.Kind, Dice: dice}
}

func (c *Card) String() string {
	dice := make([]string, len(c.Dice))
	for i, d := range c.Dice {
		dice[i] = d.String()
	}
	return fmt.Sprintf("%s[%s]", c.Kind, strings.Join(dice, " < "))
}

type Deck []CardKind

// ParseDeck reads a deck description such as "gggjjjj". Gold is written as
// g or w, jade as j or b, fort as f.
func ParseDeck(cards string) (Deck, error) {
	deck := make(Deck, 0, len(cards))
	for _, ch := range cards {
		switch ch {
		case 'g', 'G', 'w', 'W':
			deck = append(deck, Gold)
		case 'j', 'J', 'b', 'B':
			deck = append(deck, Jade)
		case 'f', 'F':
			deck = append(deck, Fort)
		default:
			return nil, fmt.Errorf("unknown card %q in deck %q", ch, cards)
		}
	}
	return deck, nil
}

func NewDeck(cards string) (Deck, error) {
	return ParseDeck(cards)
}

func ShuffledDeck(cards string) (Deck, error) {
	deck, err := ParseDeck(cards)
	if err != nil {
		return nil, err
	}
	deck.Shuffle()
	return deck, nil
}

func SevenShuffled() Deck {
	deck, _ := ShuffledDeck("jjjjggg")
	return deck
}

func SixShuffled() Deck {
	return SevenShuffled()[:6]
}

// Seed reseeds the source shared by Deck.Shuffle, RandomMove and the
// searchers. Without it every process draws the same sequence.
func Seed(seed uint64) {
	rand.Seed(seed)
}

func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
}
