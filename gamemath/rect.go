package gamemath

// Rect is an axis-aligned rectangle: top-left corner plus size.
type Rect struct {
	X, Y, W, H float64
}

func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Min() Vec {
	return Vec{X: r.X, Y: r.Y}
}

func (r Rect) Max() Vec {
	return Vec{X: r.Right(), Y: r.Bottom()}
}

// Offset returns the rectangle translated by d.
func (r Rect) Offset(d Vec) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Overlaps reports whether two rectangles share interior area.
// They fail to overlap iff one lies entirely to the left/right of or
// above/below the other; touching edges (right == left) do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Right() <= o.X || o.Right() <= r.X {
		return false
	}
	if r.Bottom() <= o.Y || o.Bottom() <= r.Y {
		return false
	}
	return true
}

// Contains reports whether the point lies inside the rectangle (right and
// bottom edges exclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Scale multiplies position and size by f.
func (r Rect) Scale(f float64) Rect {
	return Rect{X: r.X * f, Y: r.Y * f, W: r.W * f, H: r.H * f}
}
