package arena

// Vec is an integer 2D vector in pixels (or pixels per tick for velocities).
type Vec struct {
	X, Y int
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Size is the width and height of an image or rectangle.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle stored as its top-left corner plus size.
// Centre coordinates round down the same way for every entity, so a rectangle
// re-centred on its own centre does not drift.
type Rect struct {
	X, Y int
	W, H int
}

// RectAt returns a rectangle of the given size whose centre is c.
func RectAt(c Vec, s Size) Rect {
	return Rect{X: c.X - s.W/2, Y: c.Y - s.H/2, W: s.W, H: s.H}
}

func (r Rect) Left() int { return r.X }
func (r Rect) Right() int { return r.X + r.W }
func (r Rect) Top() int { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the centre point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.W, r.H}
}

// Move returns the rectangle translated by d.
func (r Rect) Move(d Vec) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Intersects reports whether the two rectangles overlap by a non-zero area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Bounds is the fixed play area, spanning [0, Width] x [0, Height].
type Bounds struct {
	Width, Height int
}

// Check reports, per axis, whether the rectangle lies entirely inside the
// bounds. Each result is independent of the other axis.
func (b Bounds) Check(r Rect) (horizontal, vertical bool) {
	horizontal = r.Left() >= 0 && r.Right() <= b.Width
	vertical = r.Top() >= 0 && r.Bottom() <= b.Height
	return horizontal, vertical
}

// Contains reports whether the rectangle is inside the bounds on both axes.
func (b Bounds) Contains(r Rect) bool {
	h, v := b.Check(r)
	return h && v
}
