package polymesh

// ShapeKind identifies the primitive kind of a physics shape.
type ShapeKind uint32

const (
	// ShapeCircle is a circle with a radius and center offset.
	ShapeCircle ShapeKind = iota
	// ShapeCapsule is a capsule: a circle stretched along its local Y
	// axis to the capsule's size.
	ShapeCapsule
	// ShapePolygon is an arbitrary simple polygon given by its vertex
	// list in counter-clockwise order.
	ShapePolygon
	// ShapeEdge is an open edge chain. Edges have no interior and
	// cannot produce a closed outline; the extractor skips them.
	ShapeEdge
)

// String returns a human-readable name for the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "Circle"
	case ShapeCapsule:
		return "Capsule"
	case ShapePolygon:
		return "Polygon"
	case ShapeEdge:
		return "Edge"
	}
	return "Unknown"
}

// Shape describes one physics shape attached to a collider, in the
// collider's local space. Which fields are meaningful depends on Kind:
//
//   - Circle: Radius, Offset
//   - Capsule: Radius, Size (the capsule's local extents), Offset
//   - Polygon: Vertices, Offset
//   - Edge: nothing (unsupported)
//
// Shape is a plain value: it carries no engine types, so any physics
// system can be adapted to it.
type Shape struct {
	Kind     ShapeKind
	Radius   float64
	Size     Vec2
	Offset   Vec2
	Vertices []Point
}

// ShapeSource supplies the shapes of one collider. It is the narrow
// capability interface between the hosting engine's physics system and
// the mesh pipeline.
type ShapeSource interface {
	Shapes() []Shape
}

// StaticShapes is a ShapeSource backed by a fixed slice. It is the
// simplest way to drive the generator from plain data (tests, tools).
type StaticShapes []Shape

// Shapes returns the slice itself.
func (s StaticShapes) Shapes() []Shape { return s }

// MeshSink consumes finished mesh buffers. Implementations publish them
// to a renderer, upload them to the GPU (see the gpu package), or write
// them to storage (see the record package).
type MeshSink interface {
	Publish(m *Mesh) error
}

// MeshSinkFunc adapts a function to the MeshSink interface.
type MeshSinkFunc func(m *Mesh) error

// Publish calls f(m).
func (f MeshSinkFunc) Publish(m *Mesh) error { return f(m) }
