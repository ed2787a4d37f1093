package polymesh

import "errors"

// Sentinel errors for mesh generation.
var (
	// ErrNilSource is returned when Generate is called without a shape
	// source. This corresponds to a collider component being absent.
	ErrNilSource = errors.New("polymesh: shape source is nil")

	// ErrNoShapes is returned when the source yields no usable outline
	// loops: either it reported zero shapes, or every shape was skipped
	// (unsupported kind or fewer than three vertices). Downstream
	// centering math divides by the loop count, so an empty run is
	// rejected up front instead of producing NaN buffers.
	ErrNoShapes = errors.New("polymesh: no usable shapes")

	// ErrNoRecord is returned when a generator in replay mode has no
	// record configured.
	ErrNoRecord = errors.New("polymesh: replay mode requires a record")
)
