package polymesh

// Wall builder: stitches the beveled skirt between an outline loop and
// its inset loop. Each loop contributes an interleaved run of vertex
// pairs (outline vertex at Z=0, then the matching inset vertex displaced
// by the bevel depth) and one quad, two triangles, per outline edge.

// appendCap appends the flat cap for one inset loop: the inset vertices
// displaced by the bevel depth, all sharing the fixed bevel-direction
// normal, indexed by the triangulator's (already rebased) triples.
func appendCap(m *Mesh, inset Loop, tris []uint32, bevel Vec3) {
	base := uint32(len(m.Positions))
	normal := capNormal(bevel)
	for _, p := range inset {
		m.Positions = append(m.Positions, p.Vec3(0).Add(bevel))
		m.Normals = append(m.Normals, normal)
	}
	for _, idx := range tris {
		m.Indices = append(m.Indices, base+idx)
	}
}

// capNormal returns the fixed normal for cap vertices: the bevel
// direction, or -Z when the bevel depth is zero.
func capNormal(bevel Vec3) Vec3 {
	n := bevel.Normalize()
	if n == (Vec3{}) {
		return V3(0, 0, -1)
	}
	return n
}

// appendWalls appends the wall ribbon for one loop. The pair for corner
// i shares the outward normal of the outline edge leaving it, so each
// wall segment shades as a flat bevel face.
func appendWalls(m *Mesh, outline, inset Loop, bevel Vec3) {
	base := uint32(len(m.Positions))
	n := len(outline)

	for i := 0; i < n; i++ {
		next := outline[(i+1)%n]
		// Outward for a counter-clockwise loop is the edge direction's
		// right-hand perpendicular.
		normal := next.Sub(outline[i]).Normalize().Perp().Neg().Vec3(0)
		m.Positions = append(m.Positions, outline[i].Vec3(0), inset[i].Vec3(0).Add(bevel))
		m.Normals = append(m.Normals, normal, normal)
	}

	// One quad per outline edge, closing seam first. Quad corners run
	// (inset k, outline k, inset k-1, outline k-1) in the interleaved
	// index space.
	end := base + uint32(2*n)
	appendQuad(m, base+1, base, end-1, end-2)
	for k := 1; k < n; k++ {
		i := base + uint32(2*k) + 1
		appendQuad(m, i, i-1, i-2, i-3)
	}
}

// appendQuad emits a quad as two triangles sharing the b-c diagonal.
func appendQuad(m *Mesh, a, b, c, d uint32) {
	m.Indices = append(m.Indices, a, b, c, c, b, d)
}
