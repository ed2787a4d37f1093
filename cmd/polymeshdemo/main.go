// Command polymeshdemo generates beveled meshes for a few demo piece
// shapes and writes them as replayable record files.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/polymesh"
	"github.com/gogpu/polymesh/record"
)

func main() {
	var (
		outDir  = flag.String("out", ".", "output directory for .pmsh files")
		inset   = flag.Float64("inset", polymesh.DefaultInsetDistance, "bevel inset distance")
		depth   = flag.Float64("depth", polymesh.DefaultBevelDepth, "bevel depth along -Z")
		verbose = flag.Bool("v", false, "log pipeline details")
	)
	flag.Parse()

	if *verbose {
		polymesh.SetLogger(slog.Default())
	}

	gen := polymesh.NewGenerator(
		polymesh.WithInsetDistance(*inset),
		polymesh.WithBevelDepth(polymesh.V3(0, 0, -*depth)),
		polymesh.WithCentering(true),
	)

	for name, src := range demoPieces() {
		mesh, err := gen.Generate(src)
		if err != nil {
			log.Fatalf("generate %s: %v", name, err)
		}

		path := filepath.Join(*outDir, name+".pmsh")
		if err := writeRecord(path, mesh); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}

		log.Printf("%s: %d vertices, %d triangles -> %s",
			name, mesh.VertexCount(), mesh.TriangleCount(), path)
	}
}

// demoPieces returns a few collider shape sets a physics Tetris variant
// would use: a classic L piece outline, a round piece and a pill piece.
func demoPieces() map[string]polymesh.ShapeSource {
	return map[string]polymesh.ShapeSource{
		"piece_l": polymesh.StaticShapes{{
			Kind: polymesh.ShapePolygon,
			Vertices: []polymesh.Point{
				polymesh.Pt(0, 0), polymesh.Pt(2, 0), polymesh.Pt(2, 1),
				polymesh.Pt(1, 1), polymesh.Pt(1, 3), polymesh.Pt(0, 3),
			},
		}},
		"piece_round": polymesh.StaticShapes{{
			Kind:   polymesh.ShapeCircle,
			Radius: 0.5,
		}},
		"piece_pill": polymesh.StaticShapes{{
			Kind:   polymesh.ShapeCapsule,
			Radius: 0.5,
			Size:   polymesh.V2(1, 2),
		}},
		"piece_twin": polymesh.StaticShapes{
			{Kind: polymesh.ShapeCircle, Radius: 0.4, Offset: polymesh.V2(-0.6, 0)},
			{Kind: polymesh.ShapeCircle, Radius: 0.4, Offset: polymesh.V2(0.6, 0)},
		},
	}
}

func writeRecord(path string, mesh *polymesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := record.Encode(mesh).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write record: %w", err)
	}
	return f.Close()
}
