package game

import (
	"fmt"
	"slices"

	"rokumon/utils"
)

type Player struct {
	Name string
	Dice []Die
}

// NewPlayer1 returns the red player's stock for the given rules.
func NewPlayer1(rules Rules) *Player {
	dice := []Die{NewDie(Red, 2), NewDie(Red, 2), NewDie(Red, 2), NewDie(Red, 2)}
	if rules.EnableFight {
		dice = []Die{NewDie(Red, 2), NewDie(Red, 2), NewDie(Red, 4), NewDie(Red, 6)}
	}
	return &Player{Name: "Player 1", Dice: dice}
}

func NewPlayer2(rules Rules) *Player {
	dice := []Die{NewDie(Black, 1), NewDie(Black, 1), NewDie(Black, 1), NewDie(Black, 1), NewDie(Black, 1)}
	if rules.EnableFight {
		dice = []Die{NewDie(Black, 1), NewDie(Black, 3), NewDie(Black, 3), NewDie(Black, 5), NewDie(White, 1)}
	}
	return &Player{Name: "Player 2", Dice: dice}
}

func (p *Player) Has(d Die) bool {
	return utils.FindIndex(p.Dice, d) >= 0
}

func (p *Player) removeDie(d Die) {
	i := utils.FindIndex(p.Dice, d)
	if i < 0 {
		panic(fmt.Sprintf("%s has no %s in stock", p.Name, d))
	}
	p.Dice = slices.Delete(p.Dice, i, i+1)
}

func (p *Player) addDie(d Die) {
	p.Dice = append(p.Dice, d)
}

// distinctDice returns the stock without duplicates in die order.
func (p *Player) distinctDice() []Die {
	dice := slices.Clone(p.Dice)
	slices.SortFunc(dice, Die.Compare)
	return slices.Compact(dice)
}

func (p *Player) clone() *Player {
	return &Player{Name: p.Name, Dice: slices.Clone(p.Dice)}
}
