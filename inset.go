package polymesh

// Corner inset solver: computes an inward-offset vertex for every corner
// of a loop by intersecting the two adjacent offset edge lines. The
// result has the same length, index order and winding as the input.

// InsetLoop returns the inset loop for the given outline, offsetting
// every edge by distance toward the interior (the loop must wind
// counter-clockwise). Corners whose offset edges are parallel, such as
// a perfectly straight corner or a zero-length edge, keep their
// original vertex so a single flat corner degrades the bevel locally
// instead of failing the whole mesh.
func InsetLoop(loop Loop, distance float64) Loop {
	inset := make(Loop, len(loop))
	for i := range loop {
		inset[i] = insetCorner(loop, i, distance)
	}
	return inset
}

// insetCorner computes the inset vertex for corner i.
func insetCorner(loop Loop, i int, distance float64) Point {
	prev, current, next := loop.corner(i)

	offA := current.Sub(prev).Normalize().Perp().Mul(distance)
	offB := next.Sub(current).Normalize().Perp().Mul(distance)

	// Both edges shifted inward by their own perpendicular.
	a1, a2 := prev.Add(offA), current.Add(offA)
	b1, b2 := current.Add(offB), next.Add(offB)

	// Shared endpoint: the offset edges already meet, no solve needed.
	if a2 == b1 {
		return a2
	}

	p, ok := Intersect(LineThrough(a1, a2), LineThrough(b1, b2))
	if !ok {
		// Parallel offset edges. Copy the original vertex through.
		return current
	}
	return p
}
