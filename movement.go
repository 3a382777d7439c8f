package main // import "github.com/tonobo/safesnake"

import "github.com/joonazan/vec2"

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions is the canonical candidate order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Direction2Vector holds, per move, the vector that is subtracted from the
// head to get the destination cell.
var Direction2Vector = map[Direction]vec2.Vector{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: 1, Y: 0},
	Right: {X: -1, Y: 0},
}

func (d Direction) index() int {
	switch d {
	case Up:
		return 0
	case Down:
		return 1
	case Left:
		return 2
	case Right:
		return 3
	}
	return -1
}

func (d Direction) Valid() bool {
	return d.index() >= 0
}

// Next returns the cell reached from p by moving in d.
func (d Direction) Next(p Point) Point {
	return PointFromVec(p.Vec().Minus(Direction2Vector[d]))
}

// Moves is a bitmask over Directions. A set bit marks the move as safe.
type Moves uint8

const AllMoves Moves = 1<<len(Directions) - 1

func (m Moves) Safe(d Direction) bool {
	i := d.index()
	return i >= 0 && m&(1<<i) != 0
}

func (m *Moves) Disable(d Direction) {
	if i := d.index(); i >= 0 {
		*m &^= 1 << i
	}
}

// List returns the safe moves in canonical order.
func (m Moves) List() []Direction {
	safe := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if m.Safe(d) {
			safe = append(safe, d)
		}
	}
	return safe
}

func (m Moves) Strings() []string {
	out := []string{}
	for _, d := range m.List() {
		out = append(out, string(d))
	}
	return out
}
