package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is a vertex array with one tightly packed float32 buffer bound to
// attribute 0.
type Mesh struct {
	vao, vbo   uint32
	components int32
	count      int32
	capacity   int
	usage      uint32
}

// VertexCount returns the number of whole vertices in data for the given
// component count. Components must be 2 or 3.
func VertexCount(data []float32, components int) (int32, error) {
	if components != 2 && components != 3 {
		return 0, fmt.Errorf("mesh: %d components per vertex, want 2 or 3", components)
	}
	if len(data)%components != 0 {
		return 0, fmt.Errorf("mesh: %d floats is not a multiple of %d", len(data), components)
	}
	return int32(len(data) / components), nil
}

// NewMesh uploads vertices with components floats per vertex. Dynamic meshes
// can be refilled with Update every frame.
func NewMesh(vertices []float32, components int, dynamic bool) (*Mesh, error) {
	count, err := VertexCount(vertices, components)
	if err != nil {
		return nil, err
	}
	m := &Mesh{components: int32(components), count: count, usage: gl.STATIC_DRAW}
	if dynamic {
		m.usage = gl.DYNAMIC_DRAW
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	m.upload(vertices)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, m.components, gl.FLOAT, false, 0, 0)

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m, nil
}

func (m *Mesh) upload(vertices []float32) {
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, m.usage)
		m.capacity = 0
		return
	}
	if len(vertices) > m.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), m.usage)
		m.capacity = len(vertices)
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
}

// Update replaces the vertex data. Larger data reallocates the buffer, smaller
// data is written into the existing one.
func (m *Mesh) Update(vertices []float32) error {
	count, err := VertexCount(vertices, int(m.components))
	if err != nil {
		return err
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	m.upload(vertices)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.count = count
	return nil
}

// Count returns the number of vertices drawn by Draw.
func (m *Mesh) Count() int32 { return m.count }

// Draw binds the vertex array and draws all vertices with mode.
func (m *Mesh) Draw(mode uint32) {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(mode, 0, m.count)
	gl.BindVertexArray(0)
}

// Delete frees the vertex array and buffer.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
