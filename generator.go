package polymesh

// Defaults for the generator's fixed constants.
const (
	// DefaultInsetDistance is the perpendicular edge offset of the
	// bevel loop, in world units.
	DefaultInsetDistance = 0.125

	// DefaultBevelDepth is how far the cap sinks along -Z.
	DefaultBevelDepth = 0.125
)

// Generator converts a collider's shapes into a beveled render mesh.
// Generation is single-shot, synchronous and idempotent: every call to
// Generate recomputes from scratch and the run owns all intermediate
// loop and triangle buffers. A Generator is not safe for concurrent use.
type Generator struct {
	insetDistance float64
	bevelDepth    Vec3
	sampleDensity float64
	transform     Transform
	centering     bool
	mode          Mode
	replay        *Mesh
}

// NewGenerator creates a generator with the default constants, identity
// transform and compute mode, then applies the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		insetDistance: DefaultInsetDistance,
		bevelDepth:    V3(0, 0, -DefaultBevelDepth),
		sampleDensity: DefaultSampleDensity,
		transform:     Identity(),
		mode:          ModeCompute,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces the mesh for the given shape source.
//
// In compute mode it runs the full pipeline: extract outline loops,
// inset every corner, triangulate the inset caps, stitch the wall
// ribbons and assemble the buffers. In replay mode it returns a copy of
// the configured precomputed mesh and never consults the source.
//
// Errors: ErrNilSource when src is nil, ErrNoShapes when no shape
// produced a usable loop, ErrNoRecord in replay mode without a replay
// source, and wrapped triangulation errors for self-intersecting loops.
func (g *Generator) Generate(src ShapeSource) (*Mesh, error) {
	if g.mode == ModeReplay {
		if g.replay == nil {
			return nil, ErrNoRecord
		}
		return g.replay.Clone(), nil
	}

	if src == nil {
		Logger().Error("polymesh: generation aborted", "err", ErrNilSource)
		return nil, ErrNilSource
	}

	shapes := src.Shapes()
	loops := extractLoops(shapes, g.transform, g.sampleDensity)
	if len(loops) == 0 {
		// The original tooling divided by the shape count here and got
		// NaN offsets on empty colliders. Reject instead.
		Logger().Error("polymesh: generation aborted",
			"err", ErrNoShapes, "shapes", len(shapes))
		return nil, ErrNoShapes
	}

	m := &Mesh{}
	for _, loop := range loops {
		inset := InsetLoop(loop, g.insetDistance)
		tris, err := TriangulateLoop(inset)
		if err != nil {
			return nil, err
		}
		appendCap(m, inset, tris, g.bevelDepth)
		appendWalls(m, loop, inset, g.bevelDepth)
	}

	if g.centering {
		m.Translate(loopsCentroid(loops).Vec2().Neg().Vec3(0))
	}

	m.RecomputeNormals()
	if err := m.Validate(); err != nil {
		return nil, err
	}

	Logger().Debug("polymesh: generated mesh",
		"loops", len(loops),
		"vertices", m.VertexCount(),
		"triangles", m.TriangleCount())
	return m, nil
}

// GenerateTo generates the mesh and publishes it to a sink.
func (g *Generator) GenerateTo(src ShapeSource, sink MeshSink) error {
	m, err := g.Generate(src)
	if err != nil {
		return err
	}
	return sink.Publish(m)
}

// loopsCentroid returns the mean of all outline vertices across the
// given loops. Callers guarantee at least one non-empty loop.
func loopsCentroid(loops []Loop) Point {
	var sx, sy float64
	count := 0
	for _, loop := range loops {
		for _, p := range loop {
			sx += p.X
			sy += p.Y
		}
		count += len(loop)
	}
	n := float64(count)
	return Point{X: sx / n, Y: sy / n}
}
