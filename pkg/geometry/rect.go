package geometry

import "math"

// Round rounds v to the nearest integer, halves away from zero, so
// integer diagnostics fields never pick up banker's-rounding drift.
func Round(v float64) int {
	return int(math.Round(v))
}

// RoundClamped rounds v to the nearest integer and clamps it to >= 0.
func RoundClamped(v float64) int {
	r := Round(v)
	if r < 0 {
		return 0
	}
	return r
}

// Rect is an axis-aligned rectangle in slide-local pixels. Origin is
// top-left, y increases downward. W and H are expected non-negative but
// no function here enforces that; callers own input validity.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x-coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x-coordinate of the rectangle's center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y-coordinate of the rectangle's center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// InflateRect returns r expanded by p on every side: x and y each move out
// by p, width and height each grow by 2p. Negative p shrinks the rect.
func InflateRect(r Rect, p float64) Rect {
	return Rect{
		X: r.X - p,
		Y: r.Y - p,
		W: r.W + 2*p,
		H: r.H + 2*p,
	}
}

// IntersectionArea returns the area of the axis-aligned overlap between a
// and b, or zero if they do not overlap.
func IntersectionArea(a, b Rect) float64 {
	w := overlapLen(a.X, a.Right(), b.X, b.Right())
	if w <= 0 {
		return 0
	}
	h := overlapLen(a.Y, a.Bottom(), b.Y, b.Bottom())
	if h <= 0 {
		return 0
	}
	return w * h
}

// Intersects reports whether a and b share positive-area overlap.
func Intersects(a, b Rect) bool {
	return IntersectionArea(a, b) > 0
}

// overlapLen returns the length of overlap between [aLo,aHi) and [bLo,bHi),
// or a non-positive value if they do not overlap.
func overlapLen(aLo, aHi, bLo, bHi float64) float64 {
	lo := aLo
	if bLo > lo {
		lo = bLo
	}
	hi := aHi
	if bHi < hi {
		hi = bHi
	}
	return hi - lo
}

// AxisOverlap returns the signed overlap of two intervals on one axis:
// [aLo,aHi) and [bLo,bHi). A positive value is the overlap length; zero or
// negative means no overlap (its magnitude is the gap between them).
func AxisOverlap(aLo, aHi, bLo, bHi float64) float64 {
	return overlapLen(aLo, aHi, bLo, bHi)
}

// XOverlap reports whether a and b share any overlap on the x-axis.
func XOverlap(a, b Rect) bool {
	return AxisOverlap(a.X, a.Right(), b.X, b.Right()) > 0
}

// YOverlap reports whether a and b share any overlap on the y-axis.
func YOverlap(a, b Rect) bool {
	return AxisOverlap(a.Y, a.Bottom(), b.Y, b.Bottom()) > 0
}
