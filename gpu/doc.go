// Package gpu uploads generated mesh buffers to wgpu.
//
// The Uploader implements polymesh.MeshSink: publishing a mesh creates a
// vertex buffer with interleaved float32 position+normal data and a
// uint32 index buffer, and writes both through the device queue. The
// package receives its hal.Device and hal.Queue from the host application
// (or a gpucontext.DeviceProvider that exposes them); it never creates a
// device of its own.
package gpu
