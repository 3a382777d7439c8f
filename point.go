package main // import "github.com/tonobo/safesnake"

import "github.com/joonazan/vec2"

// Point is a board coordinate. (0,0) is the bottom-left cell.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Vec() vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

func PointFromVec(v vec2.Vector) Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}
