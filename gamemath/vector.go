package gamemath

import "math"

// Vec is a 2D point or vector in world units.
type Vec struct {
	X, Y float64
}

func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vec) Mul(o Vec) Vec {
	return Vec{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div divides component-wise. A zero component in o yields ±Inf or NaN,
// callers that divide by tile sizes must check for an unloaded tileset first.
func (v Vec) Div(o Vec) Vec {
	return Vec{X: v.X / o.X, Y: v.Y / o.Y}
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Neg reverses the direction of the vector.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) Floor() Vec {
	return Vec{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

func (v Vec) Ceil() Vec {
	return Vec{X: math.Ceil(v.X), Y: math.Ceil(v.Y)}
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Cell converts a floored vector into integer grid coordinates.
func (v Vec) Cell() (col, row int) {
	f := v.Floor()
	return int(f.X), int(f.Y)
}
