package raster

import (
	"fmt"
	"iter"
)

// Dimensions is a 2D extent. The same type is used for sizes and for
// positions (an offset is the size of the region before it).
type Dimensions struct {
	X, Y int
}

// Dims is shorthand for Dimensions{x, y}.
func Dims(x, y int) Dimensions {
	return Dimensions{X: x, Y: y}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.X, d.Y)
}

// Area returns X*Y.
func (d Dimensions) Area() int {
	return d.X * d.Y
}

func (d Dimensions) Add(o Dimensions) Dimensions { return Dimensions{d.X + o.X, d.Y + o.Y} }
func (d Dimensions) Sub(o Dimensions) Dimensions { return Dimensions{d.X - o.X, d.Y - o.Y} }
func (d Dimensions) Mul(o Dimensions) Dimensions { return Dimensions{d.X * o.X, d.Y * o.Y} }

// Div divides component-wise. Division by a zero axis panics like integer
// division does.
func (d Dimensions) Div(o Dimensions) Dimensions { return Dimensions{d.X / o.X, d.Y / o.Y} }

// The comparisons below hold when EITHER axis satisfies them. They are not a
// partial order: Dims(1, 5).Lt(Dims(2, 1)) is true. Used as "exceeds" checks
// (a.Gt(limit)) they reject an overflow on any single axis.

func (d Dimensions) Lt(o Dimensions) bool { return d.X < o.X || d.Y < o.Y }
func (d Dimensions) Le(o Dimensions) bool { return d.X <= o.X || d.Y <= o.Y }
func (d Dimensions) Gt(o Dimensions) bool { return d.X > o.X || d.Y > o.Y }
func (d Dimensions) Ge(o Dimensions) bool { return d.X >= o.X || d.Y >= o.Y }

// FitsWithin reports whether both axes are within limit (inclusive).
func (d Dimensions) FitsWithin(limit Dimensions) bool {
	return d.X <= limit.X && d.Y <= limit.Y
}

// Negative reports whether either axis is below zero.
func (d Dimensions) Negative() bool {
	return d.X < 0 || d.Y < 0
}

// All yields every position from (0,0) up to but excluding d, row-major.
func (d Dimensions) All() iter.Seq[Dimensions] {
	return func(yield func(Dimensions) bool) {
		for y := 0; y < d.Y; y++ {
			for x := 0; x < d.X; x++ {
				if !yield(Dimensions{x, y}) {
					return
				}
			}
		}
	}
}
