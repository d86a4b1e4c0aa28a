package game

import (
	"fmt"
	"strconv"
	"strings"
)

type Grid int

const (
	Hex Grid = iota
	Square
)

func (g Grid) String() string {
	if g == Square {
		return "square"
	}
	return "hex"
}

// Coord addresses a board cell. Hex cells use cube coordinates (x+y+z == 0),
// square cells keep z at 0.
type Coord struct {
	X, Y, Z int8
}

func NewHex(x, y int8) Coord {
	return Coord{X: x, Y: y, Z: -x - y}
}

func NewSquare(x, y int8) Coord {
	return Coord{X: x, Y: y}
}

// Compare orders coordinates by x, then y, then z.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.X != o.X:
		return int(c.X) - int(o.X)
	case c.Y != o.Y:
		return int(c.Y) - int(o.Y)
	default:
		return int(c.Z) - int(o.Z)
	}
}

func (c Coord) Less(o Coord) bool {
	return c.Compare(o) < 0
}

func (c Coord) String() string {
	return fmt.Sprintf("<%d, %d, %d>", c.X, c.Y, c.Z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Distance is the number of steps between a and b on the grid.
func Distance(grid Grid, a, b Coord) int {
	dx := abs(int(a.X) - int(b.X))
	dy := abs(int(a.Y) - int(b.Y))
	if grid == Square {
		return dx + dy
	}
	dz := abs(int(a.Z) - int(b.Z))
	return max(dx, dy, dz)
}

func AreThreeInLine(grid Grid, a, b, c Coord) bool {
	sameX := a.X == b.X && b.X == c.X
	sameY := a.Y == b.Y && b.Y == c.Y
	if grid == Square {
		return sameX || sameY
	}
	return sameX || sameY || (a.Z == b.Z && b.Z == c.Z)
}

// AreThreeAdjacent reports whether at least two of the three pairs are
// neighbours.
func AreThreeAdjacent(grid Grid, a, b, c Coord) bool {
	adjacent := 0
	for _, pair := range [][2]Coord{{a, b}, {b, c}, {a, c}} {
		if Distance(grid, pair[0], pair[1]) == 1 {
			adjacent++
		}
	}
	return adjacent >= 2
}

// UserCoord is the 1-based (row, card) address a human reads off the board.
type UserCoord struct {
	Row, Card int
}

func NewUserCoord(row, card int) UserCoord {
	return UserCoord{Row: row, Card: card}
}

func (uc UserCoord) String() string {
	return fmt.Sprintf("r%dc%d", uc.Row, uc.Card)
}

// ParseUserCoord reads coordinates written as "r1c2" (case-insensitive).
func ParseUserCoord(s string) (UserCoord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 4 || s[0] != 'r' || s[2] != 'c' {
		return UserCoord{}, fmt.Errorf("invalid coordinates %q: expected format r1c2", s)
	}
	row, err := strconv.Atoi(s[1:2])
	if err != nil {
		return UserCoord{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	card, err := strconv.Atoi(s[3:4])
	if err != nil {
		return UserCoord{}, fmt.Errorf("invalid card in %q: %w", s, err)
	}
	return UserCoord{Row: row, Card: card}, nil
}
