package polymesh

import "fmt"

// Mesh is the final published state of a generation run: three parallel
// buffers describing an indexed triangle mesh. Positions and Normals
// always have the same length, Indices holds triangle triples.
type Mesh struct {
	Positions []Vec3
	Normals   []Vec3
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Validate checks the buffer invariants: parallel position/normal
// buffers, index count divisible by three, and every index in bounds.
func (m *Mesh) Validate() error {
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("polymesh: %d normals for %d positions", len(m.Normals), len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("polymesh: %d indices, not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("polymesh: index %d at position %d out of range (%d vertices)",
				idx, i, len(m.Positions))
		}
	}
	return nil
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Positions: make([]Vec3, len(m.Positions)),
		Normals:   make([]Vec3, len(m.Normals)),
		Indices:   make([]uint32, len(m.Indices)),
	}
	copy(c.Positions, m.Positions)
	copy(c.Normals, m.Normals)
	copy(c.Indices, m.Indices)
	return c
}

// Translate displaces every position by the given offset.
func (m *Mesh) Translate(offset Vec3) {
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Add(offset)
	}
}

// RecomputeNormals rebuilds the normal buffer from the triangle faces:
// every vertex normal becomes the normalized, area-weighted sum of the
// face normals of the triangles that reference it. The generator runs
// this after assembly as a smoothing pass over the hand-assigned cap and
// wall normals; it assumes the assigned winding, not the assigned
// normals. Vertices whose accumulated face normal is degenerate (zero
// area, or unreferenced vertices) keep their assigned normal.
func (m *Mesh) RecomputeNormals() {
	if len(m.Normals) != len(m.Positions) {
		m.Normals = make([]Vec3, len(m.Positions))
	}

	acc := make([]Vec3, len(m.Positions))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(a) >= len(m.Positions) || int(b) >= len(m.Positions) || int(c) >= len(m.Positions) {
			continue
		}
		pa, pb, pc := m.Positions[a], m.Positions[b], m.Positions[c]
		// Cross product magnitude carries the face area, so larger
		// faces weigh more in the average.
		face := pb.Sub(pa).Cross(pc.Sub(pa))
		acc[a] = acc[a].Add(face)
		acc[b] = acc[b].Add(face)
		acc[c] = acc[c].Add(face)
	}

	for i := range acc {
		n := acc[i].Normalize()
		if n == (Vec3{}) {
			continue
		}
		m.Normals[i] = n
	}
}
