package polymesh

// Loop is a closed, ordered sequence of 2D points describing one shape's
// boundary. The last point connects back to the first; the closing point
// is not stored. Loops are produced fresh per generation run and
// discarded after assembly.
type Loop []Point

// SignedArea returns the signed area of the loop via the shoelace
// formula. Positive for counter-clockwise winding.
func (l Loop) SignedArea() float64 {
	if len(l) < 3 {
		return 0
	}
	area := 0.0
	for i, p := range l {
		q := l[(i+1)%len(l)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// Reverse flips the loop's winding in place.
func (l Loop) Reverse() {
	for i, j := 0, len(l)-1; i < j; i, j = i+1, j-1 {
		l[i], l[j] = l[j], l[i]
	}
}

// Centroid returns the arithmetic mean of the loop's vertices.
// The second return value is false for an empty loop; callers must not
// divide by a zero vertex count.
func (l Loop) Centroid() (Point, bool) {
	if len(l) == 0 {
		return Point{}, false
	}
	var sx, sy float64
	for _, p := range l {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(l))
	return Point{X: sx / n, Y: sy / n}, true
}

// corner returns the previous, current and next vertices around index i,
// wrapping at the loop ends. Keeping this a pure lookup avoids the
// shared-mutable-iteration traps that per-corner closures invite.
func (l Loop) corner(i int) (prev, current, next Point) {
	n := len(l)
	prev = l[(i-1+n)%n]
	current = l[i]
	next = l[(i+1)%n]
	return prev, current, next
}
