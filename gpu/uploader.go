package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/polymesh"
)

// Upload errors.
var (
	// ErrNilDevice is returned when constructing an uploader without a
	// device or queue.
	ErrNilDevice = errors.New("gpu: device and queue must not be nil")

	// ErrEmptyMesh is returned when publishing a mesh with no vertices
	// or no triangles.
	ErrEmptyMesh = errors.New("gpu: mesh has no geometry")
)

// VertexStride is the byte stride of one uploaded vertex:
// position xyz + normal xyz, float32 each.
const VertexStride = 6 * 4

// Buffers holds the GPU-side handles of one uploaded mesh.
type Buffers struct {
	// Vertex is the interleaved position+normal vertex buffer
	// (VertexStride bytes per vertex).
	Vertex hal.Buffer
	// Index is the uint32 triangle index buffer.
	Index hal.Buffer
	// VertexCount is the number of vertices in Vertex.
	VertexCount int
	// IndexCount is the number of indices in Index.
	IndexCount int
}

// Uploader publishes generated meshes to wgpu buffers. It implements
// polymesh.MeshSink. Publishing again replaces the previous buffers.
//
// The uploader borrows the device and queue from the host; Release only
// destroys the buffers the uploader itself created.
type Uploader struct {
	device hal.Device
	queue  hal.Queue

	buffers Buffers
}

// NewUploader creates an uploader for the given device and queue.
func NewUploader(device hal.Device, queue hal.Queue) (*Uploader, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Uploader{device: device, queue: queue}, nil
}

// FromProvider creates an uploader from a gpucontext device provider.
// The provider must expose its HAL types via HalDevice() any and
// HalQueue() any, the way gogpu application contexts do.
func FromProvider(p gpucontext.DeviceProvider) (*Uploader, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := p.(halProvider)
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}
	return NewUploader(device, queue)
}

// Publish uploads the mesh, replacing any previously uploaded buffers.
func (u *Uploader) Publish(m *polymesh.Mesh) error {
	if m == nil || len(m.Positions) == 0 || len(m.Indices) == 0 {
		return ErrEmptyMesh
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("gpu: refusing to upload: %w", err)
	}

	vertexData := interleave(m)
	indexData := indexBytes(m.Indices)

	vbuf, err := u.createAndUpload("polymesh_vertices", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	ibuf, err := u.createAndUpload("polymesh_indices", indexData,
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		u.device.DestroyBuffer(vbuf)
		return err
	}

	u.Release()
	u.buffers = Buffers{
		Vertex:      vbuf,
		Index:       ibuf,
		VertexCount: m.VertexCount(),
		IndexCount:  len(m.Indices),
	}

	polymesh.Logger().Debug("gpu: uploaded mesh",
		"vertices", u.buffers.VertexCount,
		"indices", u.buffers.IndexCount,
		"vertexBytes", len(vertexData),
		"indexBytes", len(indexData))
	return nil
}

// Buffers returns the handles of the most recently published mesh.
// The zero Buffers value means nothing has been published yet.
func (u *Uploader) Buffers() Buffers {
	return u.buffers
}

// Release destroys the uploader's buffers. Safe to call repeatedly.
func (u *Uploader) Release() {
	if u.buffers.Vertex != nil {
		u.device.DestroyBuffer(u.buffers.Vertex)
	}
	if u.buffers.Index != nil {
		u.device.DestroyBuffer(u.buffers.Index)
	}
	u.buffers = Buffers{}
}

// createAndUpload creates a GPU buffer and writes data through the queue.
func (u *Uploader) createAndUpload(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s: %w", label, err)
	}
	u.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// interleave packs positions and normals into the vertex layout:
// [px py pz nx ny nz] float32, little-endian.
func interleave(m *polymesh.Mesh) []byte {
	data := make([]byte, 0, len(m.Positions)*VertexStride)
	for i := range m.Positions {
		data = appendVec3(data, m.Positions[i])
		data = appendVec3(data, m.Normals[i])
	}
	return data
}

func appendVec3(data []byte, v polymesh.Vec3) []byte {
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(v.X)))
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(v.Y)))
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(v.Z)))
	return data
}

func indexBytes(indices []uint32) []byte {
	data := make([]byte, 0, len(indices)*4)
	for _, idx := range indices {
		data = binary.LittleEndian.AppendUint32(data, idx)
	}
	return data
}
