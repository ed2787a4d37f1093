package polymesh

import (
	"fmt"

	"github.com/rclancey/earcut"
)

// Triangulation of the inset loop into the flat cap. The actual
// polygon triangulation is delegated to the earcut ear-clipping library;
// this file only adapts loop points to earcut's flat coordinate format
// and fixes up the output winding.

// TriangulateLoop triangulates a simple polygon loop and returns index
// triples into the loop's vertex order. The winding of each triangle is
// reversed (second and third vertex swapped) so that cap faces point
// along the bevel direction (-Z) rather than out of the collider plane.
//
// A simple loop of N vertices produces exactly N-2 triangles.
func TriangulateLoop(loop Loop) ([]uint32, error) {
	if len(loop) < 3 {
		return nil, fmt.Errorf("polymesh: cannot triangulate %d-vertex loop", len(loop))
	}

	// Flat coordinate array in earcut's [x0, y0, x1, y1, ...] format.
	coords := make([]float64, len(loop)*2)
	for i, p := range loop {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("polymesh: triangulation failed for %d-vertex loop: %w", len(loop), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("polymesh: triangulator returned %d indices, not a multiple of 3", len(indices))
	}

	out := make([]uint32, len(indices))
	for i := 0; i < len(indices); i += 3 {
		// Swap the second and third vertex of every triangle.
		out[i] = uint32(indices[i])
		out[i+1] = uint32(indices[i+2])
		out[i+2] = uint32(indices[i+1])
	}
	return out, nil
}
