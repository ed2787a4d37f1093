// Package record serializes finished mesh buffers for replay.
//
// A Record is the on-disk form of one generated mesh: positions, normals
// and triangle indices in a small versioned little-endian container. The
// typical flow is compute-at-build-time, replay-at-runtime:
//
//	// build step
//	mesh, _ := gen.Generate(src)
//	rec := record.Encode(mesh)
//	rec.WriteTo(file)
//
//	// runtime
//	rec, _ := record.ReadFrom(file)
//	mesh, _ := rec.Mesh()
//	gen := polymesh.NewGenerator(
//	    polymesh.WithMode(polymesh.ModeReplay),
//	    polymesh.WithReplaySource(mesh),
//	)
//
// Buffers are stored as float32: that is what renderers consume, and a
// replayed mesh is meant to be uploaded, not re-processed.
package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/polymesh"
)

// Container layout, all little-endian:
//
//	magic   [4]byte "PMSH"
//	version uint16
//	flags   uint16 (reserved, zero)
//	nvert   uint32
//	nidx    uint32
//	positions nvert * 3 * float32
//	normals   nvert * 3 * float32
//	indices   nidx * uint32

// Magic identifies a serialized mesh record.
var Magic = [4]byte{'P', 'M', 'S', 'H'}

// Version is the current container format version.
const Version uint16 = 1

const headerSize = 4 + 2 + 2 + 4 + 4

// Decoding errors.
var (
	// ErrBadMagic is returned when the input does not start with the
	// record magic.
	ErrBadMagic = errors.New("record: bad magic")

	// ErrVersion is returned for container versions this package does
	// not understand.
	ErrVersion = errors.New("record: unsupported version")

	// ErrCorrupt is returned when the container's counts and payload
	// disagree, or the payload violates the mesh buffer invariants.
	ErrCorrupt = errors.New("record: corrupt record")
)

// Record holds one mesh's buffers in serialized form. Positions and
// Normals are flat [x y z x y z ...] float32 runs of equal length.
type Record struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// Encode converts a mesh into its record form.
func Encode(m *polymesh.Mesh) *Record {
	r := &Record{
		Positions: make([]float32, 0, len(m.Positions)*3),
		Normals:   make([]float32, 0, len(m.Normals)*3),
		Indices:   make([]uint32, len(m.Indices)),
	}
	for _, p := range m.Positions {
		r.Positions = append(r.Positions, float32(p.X), float32(p.Y), float32(p.Z))
	}
	for _, n := range m.Normals {
		r.Normals = append(r.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	copy(r.Indices, m.Indices)
	return r
}

// VertexCount returns the number of vertices in the record.
func (r *Record) VertexCount() int { return len(r.Positions) / 3 }

// TriangleCount returns the number of triangles in the record.
func (r *Record) TriangleCount() int { return len(r.Indices) / 3 }

// Validate checks the record's internal consistency: parallel buffers,
// whole vertices, whole triangles, indices in bounds.
func (r *Record) Validate() error {
	if len(r.Positions)%3 != 0 {
		return fmt.Errorf("%w: %d position floats", ErrCorrupt, len(r.Positions))
	}
	if len(r.Normals) != len(r.Positions) {
		return fmt.Errorf("%w: %d normal floats for %d position floats",
			ErrCorrupt, len(r.Normals), len(r.Positions))
	}
	if len(r.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrCorrupt, len(r.Indices))
	}
	nvert := uint32(len(r.Positions) / 3)
	for i, idx := range r.Indices {
		if idx >= nvert {
			return fmt.Errorf("%w: index %d at position %d out of range (%d vertices)",
				ErrCorrupt, idx, i, nvert)
		}
	}
	return nil
}

// Mesh converts the record back into mesh buffers, validating first.
func (r *Record) Mesh() (*polymesh.Mesh, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	m := &polymesh.Mesh{
		Positions: make([]polymesh.Vec3, 0, r.VertexCount()),
		Normals:   make([]polymesh.Vec3, 0, r.VertexCount()),
		Indices:   make([]uint32, len(r.Indices)),
	}
	for i := 0; i+2 < len(r.Positions); i += 3 {
		m.Positions = append(m.Positions, polymesh.V3(
			float64(r.Positions[i]), float64(r.Positions[i+1]), float64(r.Positions[i+2])))
	}
	for i := 0; i+2 < len(r.Normals); i += 3 {
		m.Normals = append(m.Normals, polymesh.V3(
			float64(r.Normals[i]), float64(r.Normals[i+1]), float64(r.Normals[i+2])))
	}
	copy(m.Indices, r.Indices)
	return m, nil
}

// Marshal serializes the record into the versioned binary container.
func (r *Record) Marshal() []byte {
	size := headerSize + 4*(len(r.Positions)+len(r.Normals)+len(r.Indices))
	buf := make([]byte, 0, size)

	buf = append(buf, Magic[:]...)
	buf = binary.LittleEndian.AppendUint16(buf, Version)
	buf = binary.LittleEndian.AppendUint16(buf, 0) // flags
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(r.Positions)/3))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(r.Indices)))

	for _, f := range r.Positions {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, f := range r.Normals {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, idx := range r.Indices {
		buf = binary.LittleEndian.AppendUint32(buf, idx)
	}
	return buf
}

// Unmarshal parses a serialized record. It validates the magic, version,
// counts and index bounds, and never panics on corrupt input.
func Unmarshal(data []byte) (*Record, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", ErrCorrupt, len(data), headerSize)
	}
	if [4]byte(data[:4]) != Magic {
		return nil, ErrBadMagic
	}
	version := binary.LittleEndian.Uint16(data[4:6])
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, version)
	}
	nvert := int(binary.LittleEndian.Uint32(data[8:12]))
	nidx := int(binary.LittleEndian.Uint32(data[12:16]))

	want := headerSize + 4*(nvert*3*2+nidx)
	if len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes for %d vertices and %d indices, want %d",
			ErrCorrupt, len(data), nvert, nidx, want)
	}

	r := &Record{
		Positions: make([]float32, nvert*3),
		Normals:   make([]float32, nvert*3),
		Indices:   make([]uint32, nidx),
	}
	off := headerSize
	for i := range r.Positions {
		r.Positions[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
		off += 4
	}
	for i := range r.Normals {
		r.Normals[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
		off += 4
	}
	for i := range r.Indices {
		r.Indices[i] = binary.LittleEndian.Uint32(data[off:])
		off += 4
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// WriteTo writes the serialized record to w.
// It implements io.WriterTo.
func (r *Record) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Marshal())
	return int64(n), err
}

// ReadFrom reads and parses a serialized record from rd, consuming it to
// EOF.
func ReadFrom(rd io.Reader) (*Record, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("record: read: %w", err)
	}
	return Unmarshal(data)
}
