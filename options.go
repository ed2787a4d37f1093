package polymesh

// Mode selects how a Generator produces its mesh.
type Mode uint32

const (
	// ModeCompute runs the full extract/inset/triangulate/wall pipeline.
	ModeCompute Mode = iota
	// ModeReplay returns buffers from a precomputed record without
	// touching the pipeline. Use this where generation already happened
	// ahead of time (asset build, editor tooling) and the runtime only
	// needs to load the result.
	ModeReplay
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeCompute:
		return "Compute"
	case ModeReplay:
		return "Replay"
	}
	return "Unknown"
}

// Option configures a Generator during creation.
//
// Example:
//
//	gen := polymesh.NewGenerator(
//	    polymesh.WithInsetDistance(0.1),
//	    polymesh.WithTransform(polymesh.TRS(2, 0, math.Pi/4, 1)),
//	)
type Option func(*Generator)

// WithInsetDistance sets the perpendicular distance every edge is offset
// inward when computing the bevel loop. Must be positive; non-positive
// values are ignored.
func WithInsetDistance(d float64) Option {
	return func(g *Generator) {
		if d > 0 {
			g.insetDistance = d
		}
	}
}

// WithBevelDepth sets the fixed displacement applied to the inset loop,
// normally along -Z. The cap normal points along this vector.
func WithBevelDepth(v Vec3) Option {
	return func(g *Generator) {
		g.bevelDepth = v
	}
}

// WithSampleDensity sets the number of circle samples per unit of
// radius. Must be positive; non-positive values are ignored.
func WithSampleDensity(d float64) Option {
	return func(g *Generator) {
		if d > 0 {
			g.sampleDensity = d
		}
	}
}

// WithTransform sets the world transform applied to every shape during
// extraction. Defaults to the identity.
func WithTransform(xf Transform) Option {
	return func(g *Generator) {
		g.transform = xf
	}
}

// WithCentering makes the generator translate the finished mesh so the
// combined centroid of all outline loops sits at the origin.
func WithCentering(enabled bool) Option {
	return func(g *Generator) {
		g.centering = enabled
	}
}

// WithMode selects compute or replay mode. Defaults to ModeCompute.
func WithMode(m Mode) Option {
	return func(g *Generator) {
		g.mode = m
	}
}

// WithReplaySource sets the precomputed mesh returned in replay mode.
// Typically this comes from record.Record.Mesh(). Setting a replay
// source does not switch the mode by itself.
func WithReplaySource(m *Mesh) Option {
	return func(g *Generator) {
		g.replay = m
	}
}
