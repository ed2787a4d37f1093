package polymesh

import "math"

// Linear solver for the corner inset computation.
//
// Each offset edge is expressed as an infinite line in the standard
// a*x + b*y = c form, and the inset vertex is the solution of the 2x2
// system formed by two such lines. The solver deliberately reports
// near-parallel lines as unsolvable instead of producing a far-away
// intersection point.

// detEpsilon is the determinant threshold below which two lines are
// treated as parallel. Offset edges of a colinear corner produce a
// determinant of exactly zero; the threshold also absorbs floating-point
// noise from nearly straight corners.
const detEpsilon = 1e-12

// Line represents an infinite 2D line in the form a*x + b*y = c.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line passing through two points.
// The points must be distinct; a zero-length edge yields a degenerate
// line that no other line intersects cleanly, which the solver then
// reports as parallel.
func LineThrough(p, q Point) Line {
	a := q.Y - p.Y
	b := p.X - q.X
	return Line{
		A: a,
		B: b,
		C: a*p.X + b*p.Y,
	}
}

// Intersect solves the 2x2 linear system formed by two lines.
// It returns the intersection point and true, or the zero point and
// false when the lines are parallel (determinant below detEpsilon).
func Intersect(l1, l2 Line) (Point, bool) {
	det := l1.A*l2.B - l2.A*l1.B
	if math.Abs(det) < detEpsilon {
		return Point{}, false
	}
	return Point{
		X: (l2.B*l1.C - l1.B*l2.C) / det,
		Y: (l1.A*l2.C - l2.A*l1.C) / det,
	}, true
}
