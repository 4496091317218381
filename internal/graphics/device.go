package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"voxview/internal/chunks"
	"voxview/internal/meshing"
)

// quadVertices is the unit face quad in the XY plane centered at the
// origin: two CCW triangles, position xyz + corner uv per vertex. The
// vertex shader rotates and translates it per instance.
var quadVertices = []float32{
	-0.5, -0.5, 0, 0, 0,
	0.5, -0.5, 0, 1, 0,
	0.5, 0.5, 0, 1, 1,
	0.5, 0.5, 0, 1, 1,
	-0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0, 0, 0,
}

// quadStride is the byte stride of quadVertices.
const quadStride = 5 * 4

// QuadVertexCount is the number of vertices drawn per face instance.
const QuadVertexCount = 6

// Device owns the shared face quad and creates per-chunk vertex state: one
// VAO per chunk binding the quad attributes at divisor 0 and the chunk's
// face stream at divisor 1. Must be used on the GL context thread.
type Device struct {
	quadVBO uint32
}

var _ chunks.Device = (*Device)(nil)

// NewDevice uploads the shared quad.
func NewDevice() *Device {
	d := &Device{}
	gl.GenBuffers(1, &d.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return d
}

// CreateInstanceBuffer uploads a chunk's face stream and records the full
// attribute layout in a fresh VAO.
func (d *Device) CreateInstanceBuffer(instances []meshing.FaceInstance) (chunks.InstanceBuffer, error) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	// Shared quad: location 0 position, location 1 corner uv.
	gl.BindBuffer(gl.ARRAY_BUFFER, d.quadVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, quadStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, quadStride, 3*4)

	// Face stream: location 2 block corner position, location 3 face id,
	// location 4 block type, advancing once per instance.
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(instances)*meshing.InstanceSize, gl.Ptr(instances), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, meshing.InstanceSize, 0)
	gl.VertexAttribDivisor(2, 1)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribIPointerWithOffset(3, 1, gl.UNSIGNED_INT, meshing.InstanceSize, 12)
	gl.VertexAttribDivisor(3, 1)
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribIPointerWithOffset(4, 1, gl.UNSIGNED_INT, meshing.InstanceSize, 16)
	gl.VertexAttribDivisor(4, 1)

	gl.BindVertexArray(0)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteVertexArrays(1, &vao)
		return chunks.InstanceBuffer{}, fmt.Errorf("uploading %d face instances: GL error 0x%04x", len(instances), glErr)
	}

	return chunks.InstanceBuffer{VAO: vao, VBO: vbo, Count: int32(len(instances))}, nil
}

// DestroyInstanceBuffer releases a chunk's vertex state.
func (d *Device) DestroyInstanceBuffer(buf chunks.InstanceBuffer) {
	gl.DeleteBuffers(1, &buf.VBO)
	gl.DeleteVertexArrays(1, &buf.VAO)
}

// Delete releases the shared quad.
func (d *Device) Delete() {
	gl.DeleteBuffers(1, &d.quadVBO)
	d.quadVBO = 0
}
