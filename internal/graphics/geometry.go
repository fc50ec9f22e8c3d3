package graphics

// Point is a pixel position
type Point struct {
	X, Y int
}

// Size is a pixel extent
type Size struct {
	W, H int
}

// Rect is an origin plus a size
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect builds a Rect from its components
func NewRect(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Insets shrink a Rect from each edge
type Insets struct {
	Top, Right, Bottom, Left int
}

// UniformInsets returns the same inset on all four edges
func UniformInsets(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// Inset returns r shrunk by in. Sizes never go negative.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		Origin: Point{X: r.Origin.X + in.Left, Y: r.Origin.Y + in.Top},
		Size:   Size{W: r.Size.W - in.Left - in.Right, H: r.Size.H - in.Top - in.Bottom},
	}
	if out.Size.W < 0 {
		out.Size.W = 0
	}
	if out.Size.H < 0 {
		out.Size.H = 0
	}
	return out
}

// FitCircle returns the largest square centred inside r
func (r Rect) FitCircle() Rect {
	side := min(r.Size.W, r.Size.H)
	return Rect{
		Origin: Point{
			X: r.Origin.X + (r.Size.W-side)/2,
			Y: r.Origin.Y + (r.Size.H-side)/2,
		},
		Size: Size{W: side, H: side},
	}
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.W &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.H
}

// Offset moves r by p
func (r Rect) Offset(p Point) Rect {
	r.Origin.X += p.X
	r.Origin.Y += p.Y
	return r
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.Size.W <= 0 || r.Size.H <= 0
}
