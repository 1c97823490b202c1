package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pt is the point type most puzzles use.
type Pt = Pt2[int64]

// Pt2 is a point on a 2D integer plane.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}
