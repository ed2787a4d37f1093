// Package polymesh converts 2D physics collider shapes into beveled,
// indexed 3D render meshes.
//
// # Overview
//
// polymesh takes the shapes attached to a 2D collider (circles, capsules,
// arbitrary polygons), samples each one into a closed outline loop, insets
// every corner by a fixed distance, triangulates the inset loop into a flat
// cap, and stitches a ribbon of beveled wall quads between the outline and
// the inset loop. The result is a single set of indexed triangle buffers
// (positions, normals, indices) consumable by any renderer.
//
// # Quick Start
//
//	import "github.com/gogpu/polymesh"
//
//	src := polymesh.StaticShapes{
//	    {Kind: polymesh.ShapeCircle, Radius: 0.5},
//	}
//
//	gen := polymesh.NewGenerator()
//	mesh, err := gen.Generate(src)
//	if err != nil {
//	    // no usable shapes, triangulation failure, ...
//	}
//	_ = mesh.Positions // []Vec3
//	_ = mesh.Normals   // []Vec3
//	_ = mesh.Indices   // []uint32, len%3 == 0
//
// # Architecture
//
// The library is organized into:
//   - Public API: Shape, ShapeSource, Generator, Mesh, MeshSink
//   - Pipeline: extraction (extract.go), corner inset (inset.go),
//     triangulation (triangulate.go), wall building (wall.go),
//     assembly (mesh.go)
//   - record/: binary serialization of finished buffers for replay
//   - gpu/: upload of finished buffers to wgpu vertex/index buffers
//
// # Coordinate System
//
// Input shapes live in the XY plane with counter-clockwise outline
// winding. The generated mesh extends along -Z: the inset cap sits at the
// bevel depth, the wall ribbon connects it back to the outline at Z=0.
// Angles are in radians.
//
// # Modes
//
// Generation normally computes everything from scratch (ModeCompute). A
// generator can instead be configured with a precomputed record and
// ModeReplay, in which case Generate returns the recorded buffers without
// touching the pipeline. This mirrors the compute-at-edit-time /
// replay-at-runtime split of game engine tooling without build tags.
package polymesh
