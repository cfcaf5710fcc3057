// Package gamemath holds the small geometry helpers shared by the level,
// physics, camera and render packages. It has no dependencies on ebitengine,
// donburi, or resolv.
package gamemath

// Rect is an axis-aligned rectangle in world pixels. Right and Bottom are
// exclusive edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH builds a Rect from a top-left corner and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Overlaps reports strict overlap. Rectangles that only share an edge do not
// overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Right > o.Left && r.Left < o.Right && r.Bottom > o.Top && r.Top < o.Bottom
}

// Within reports whether r lies entirely inside o.
func (r Rect) Within(o Rect) bool {
	return r.Left >= o.Left && r.Right <= o.Right && r.Top >= o.Top && r.Bottom <= o.Bottom
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{Left: r.Left - d, Top: r.Top - d, Right: r.Right + d, Bottom: r.Bottom + d}
}

// Area returns the rectangle's area, or 0 for a degenerate rectangle.
func (r Rect) Area() float64 {
	if r.Right <= r.Left || r.Bottom <= r.Top {
		return 0
	}
	return r.Width() * r.Height()
}
