package polymesh

import "math"

// Polygon extraction: samples each physics shape into one closed outline
// loop in world space. Loops from separate shapes stay independent; the
// rest of the pipeline never merges them.

const (
	// DefaultSampleDensity is the number of circle samples per unit of
	// radius. A circle of radius R is sampled with
	// max(ceil(R*density), MinCircleSamples) points.
	DefaultSampleDensity = 25

	// MinCircleSamples is the lower bound on circle and capsule
	// sampling, so small shapes still produce a smooth outline.
	MinCircleSamples = 25
)

// ExtractLoops samples the given shapes into closed outline loops using
// the default sampling density. Unsupported and degenerate shapes are
// skipped with a warning and contribute no loop.
func ExtractLoops(shapes []Shape, xf Transform) []Loop {
	return extractLoops(shapes, xf, DefaultSampleDensity)
}

func extractLoops(shapes []Shape, xf Transform, density float64) []Loop {
	loops := make([]Loop, 0, len(shapes))
	for i, s := range shapes {
		var loop Loop
		switch s.Kind {
		case ShapeCircle:
			loop = sampleCircle(s, xf, density, 0)
		case ShapeCapsule:
			loop = sampleCircle(s, xf, density, capsuleStretch(s))
		case ShapeEdge:
			Logger().Warn("polymesh: skipping unsupported shape",
				"index", i, "kind", s.Kind.String())
			continue
		default:
			loop = polygonLoop(s, xf)
		}

		if len(loop) < 3 {
			Logger().Warn("polymesh: skipping degenerate shape",
				"index", i, "kind", s.Kind.String(), "vertices", len(loop))
			continue
		}
		loops = append(loops, loop)
	}
	return loops
}

// circleSampleCount returns the number of outline samples for a circle
// of the given radius.
func circleSampleCount(radius, density float64) int {
	n := int(math.Ceil(radius * density))
	if n < MinCircleSamples {
		return MinCircleSamples
	}
	return n
}

// capsuleStretch returns how far a capsule's circular cross-section is
// pushed along its local Y axis to form the two straight sides. A
// capsule whose half-height does not exceed its radius degenerates to a
// circle (stretch 0).
func capsuleStretch(s Shape) float64 {
	return math.Max(s.Size.Y/2, s.Radius) - s.Radius
}

// sampleCircle samples a circle (stretch == 0) or capsule (stretch > 0)
// outline counter-clockwise. Each sample sits at exactly Radius from the
// local center before the capsule stretch, the collider offset and the
// world transform are applied.
func sampleCircle(s Shape, xf Transform, density, stretch float64) Loop {
	n := circleSampleCount(s.Radius, density)
	loop := make(Loop, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		p := Pt(math.Cos(angle)*s.Radius, math.Sin(angle)*s.Radius)
		if stretch > 0 && p.Y != 0 {
			p.Y += math.Copysign(stretch, p.Y)
		}
		loop = append(loop, xf.Apply(p.Add(s.Offset)))
	}
	return loop
}

// polygonLoop transforms a polygon shape's native vertex list. A
// clockwise vertex list, or one flipped clockwise by a mirroring
// transform, is reversed so every extracted loop winds
// counter-clockwise as the inset and wall stages assume.
func polygonLoop(s Shape, xf Transform) Loop {
	loop := make(Loop, 0, len(s.Vertices))
	for _, p := range s.Vertices {
		loop = append(loop, xf.Apply(p.Add(s.Offset)))
	}
	if loop.SignedArea() < 0 {
		Logger().Warn("polymesh: reversing clockwise polygon outline",
			"vertices", len(loop))
		loop.Reverse()
	}
	return loop
}
