package polymesh

import (
	"errors"
	"math"
	"testing"
)

func unitSquareSource() ShapeSource {
	return StaticShapes{{
		Kind:     ShapePolygon,
		Vertices: []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)},
	}}
}

// TestGenerate_UnitSquare pins down the full pipeline on the simplest
// interesting input: a unit square with the default 0.125 inset.
func TestGenerate_UnitSquare(t *testing.T) {
	mesh, err := NewGenerator().Generate(unitSquareSource())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := mesh.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// 4 cap vertices + 4 interleaved wall pairs.
	if got := mesh.VertexCount(); got != 12 {
		t.Errorf("vertices = %d, want 12", got)
	}
	// Cap of 2 triangles plus a wall ribbon of 4 quads (8 triangles).
	if got := mesh.TriangleCount(); got != 10 {
		t.Errorf("triangles = %d, want 10", got)
	}

	// The cap is the inset square, side 1 - 2*0.125, at the bevel depth,
	// centered on the original centroid.
	var sumX, sumY float64
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < 4; i++ {
		p := mesh.Positions[i]
		if p.Z != -DefaultBevelDepth {
			t.Errorf("cap vertex %d at Z=%v, want %v", i, p.Z, -DefaultBevelDepth)
		}
		sumX += p.X
		sumY += p.Y
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}
	if math.Abs(maxX-minX-0.75) > 1e-9 {
		t.Errorf("inset square side = %v, want 0.75", maxX-minX)
	}
	if math.Abs(sumX/4-0.5) > 1e-9 || math.Abs(sumY/4-0.5) > 1e-9 {
		t.Errorf("cap centroid = (%v, %v), want (0.5, 0.5)", sumX/4, sumY/4)
	}
}

// TestGenerate_FaceOrientation checks the winding of every face in the
// generated unit square mesh: cap faces point along -Z and wall faces
// point away from the shape's center, so the mesh renders right-side
// out. RecomputeNormals derives vertex normals from exactly these face
// orientations, so a winding flip anywhere in the pipeline shows up
// here.
func TestGenerate_FaceOrientation(t *testing.T) {
	mesh, err := NewGenerator().Generate(unitSquareSource())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	center := V2(0.5, 0.5)
	caps, walls := 0, 0
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Positions[mesh.Indices[i]]
		b := mesh.Positions[mesh.Indices[i+1]]
		c := mesh.Positions[mesh.Indices[i+2]]
		face := b.Sub(a).Cross(c.Sub(a))

		// Wall triangles always touch an outline vertex at Z=0; a
		// triangle entirely at the bevel depth belongs to the cap.
		if a.Z == -DefaultBevelDepth && b.Z == -DefaultBevelDepth && c.Z == -DefaultBevelDepth {
			caps++
			if face.Z >= 0 {
				t.Errorf("cap triangle %d face normal %v, want -Z facing", i/3, face)
			}
			continue
		}

		walls++
		mid := a.Add(b).Add(c).Mul(1.0 / 3)
		outward := V2(mid.X, mid.Y).Sub(center)
		if V2(face.X, face.Y).Dot(outward) <= 0 {
			t.Errorf("wall triangle %d face normal %v points inward", i/3, face)
		}
	}
	if caps != 2 || walls != 8 {
		t.Errorf("classified %d cap and %d wall triangles, want 2 and 8", caps, walls)
	}
}

func TestGenerate_IsIdempotent(t *testing.T) {
	gen := NewGenerator()
	src := unitSquareSource()

	first, err := gen.Generate(src)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := gen.Generate(src)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(first.Positions) != len(second.Positions) || len(first.Indices) != len(second.Indices) {
		t.Fatal("repeated generation changed buffer sizes")
	}
	for i := range first.Positions {
		if first.Positions[i] != second.Positions[i] {
			t.Fatalf("position %d differs between runs", i)
		}
	}
	for i := range first.Indices {
		if first.Indices[i] != second.Indices[i] {
			t.Fatalf("index %d differs between runs", i)
		}
	}
}

func TestGenerate_MultipleLoops(t *testing.T) {
	src := StaticShapes{
		{Kind: ShapeCircle, Radius: 0.5, Offset: V2(-2, 0)},
		{Kind: ShapeCircle, Radius: 0.5, Offset: V2(2, 0)},
	}
	mesh, err := NewGenerator().Generate(src)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := mesh.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// Per loop: N cap vertices + 2N wall vertices, N-2 cap triangles +
	// 2N wall triangles.
	n := circleSampleCount(0.5, DefaultSampleDensity)
	if got, want := mesh.VertexCount(), 2*3*n; got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	if got, want := mesh.TriangleCount(), 2*((n-2)+2*n); got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  ShapeSource
		want error
	}{
		{"nil source", nil, ErrNilSource},
		{"no shapes", StaticShapes{}, ErrNoShapes},
		{"only edges", StaticShapes{{Kind: ShapeEdge}, {Kind: ShapeEdge}}, ErrNoShapes},
		{
			name: "only degenerate polygons",
			src:  StaticShapes{{Kind: ShapePolygon, Vertices: []Point{Pt(0, 0), Pt(1, 0)}}},
			want: ErrNoShapes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator().Generate(tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("Generate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerate_EdgeShapeDoesNotAbort(t *testing.T) {
	src := StaticShapes{
		{Kind: ShapeEdge},
		{Kind: ShapePolygon, Vertices: []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}},
	}
	mesh, err := NewGenerator().Generate(src)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mesh.TriangleCount() != 10 {
		t.Errorf("triangles = %d, want the square's 10", mesh.TriangleCount())
	}
}

func TestGenerate_Centering(t *testing.T) {
	src := StaticShapes{{
		Kind:     ShapePolygon,
		Vertices: []Point{Pt(10, 10), Pt(11, 10), Pt(11, 11), Pt(10, 11)},
	}}
	mesh, err := NewGenerator(WithCentering(true)).Generate(src)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var sum Vec3
	for _, p := range mesh.Positions {
		sum = sum.Add(p)
	}
	mean := sum.Mul(1 / float64(len(mesh.Positions)))
	if math.Abs(mean.X) > 1e-9 || math.Abs(mean.Y) > 1e-9 {
		t.Errorf("centered mesh mean = (%v, %v), want origin", mean.X, mean.Y)
	}
}

func TestGenerate_Transform(t *testing.T) {
	mesh, err := NewGenerator(
		WithTransform(Translate(5, 0)),
	).Generate(unitSquareSource())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var sumX float64
	for _, p := range mesh.Positions {
		sumX += p.X
	}
	if mean := sumX / float64(len(mesh.Positions)); math.Abs(mean-5.5) > 1e-9 {
		t.Errorf("transformed mesh mean X = %v, want 5.5", mean)
	}
}

func TestGenerate_Replay(t *testing.T) {
	precomputed, err := NewGenerator().Generate(unitSquareSource())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	gen := NewGenerator(
		WithMode(ModeReplay),
		WithReplaySource(precomputed),
	)

	// Replay never consults the source; nil is fine.
	replayed, err := gen.Generate(nil)
	if err != nil {
		t.Fatalf("replay Generate: %v", err)
	}
	if replayed.VertexCount() != precomputed.VertexCount() ||
		replayed.TriangleCount() != precomputed.TriangleCount() {
		t.Fatal("replayed mesh differs from the precomputed one")
	}
	for i := range precomputed.Positions {
		if replayed.Positions[i] != precomputed.Positions[i] {
			t.Fatalf("replayed position %d differs", i)
		}
	}

	// The replayed mesh is a copy, not an alias.
	replayed.Positions[0] = V3(99, 99, 99)
	if precomputed.Positions[0] == replayed.Positions[0] {
		t.Error("replayed mesh aliases the replay source")
	}
}

func TestGenerate_ReplayWithoutRecord(t *testing.T) {
	_, err := NewGenerator(WithMode(ModeReplay)).Generate(nil)
	if !errors.Is(err, ErrNoRecord) {
		t.Errorf("Generate() error = %v, want %v", err, ErrNoRecord)
	}
}

func TestGenerateTo_PublishesToSink(t *testing.T) {
	var published *Mesh
	sink := MeshSinkFunc(func(m *Mesh) error {
		published = m
		return nil
	})

	if err := NewGenerator().GenerateTo(unitSquareSource(), sink); err != nil {
		t.Fatalf("GenerateTo: %v", err)
	}
	if published == nil || published.TriangleCount() != 10 {
		t.Fatal("sink did not receive the generated mesh")
	}

	if err := NewGenerator().GenerateTo(StaticShapes{}, sink); !errors.Is(err, ErrNoShapes) {
		t.Errorf("GenerateTo on empty source = %v, want %v", err, ErrNoShapes)
	}
}

func TestOptions_IgnoreInvalid(t *testing.T) {
	g := NewGenerator(
		WithInsetDistance(-1),
		WithSampleDensity(0),
	)
	if g.insetDistance != DefaultInsetDistance {
		t.Errorf("insetDistance = %v, want default", g.insetDistance)
	}
	if g.sampleDensity != DefaultSampleDensity {
		t.Errorf("sampleDensity = %v, want default", g.sampleDensity)
	}
}
