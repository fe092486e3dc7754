package quad

import (
	"fmt"
	"log"
	"time"

	"engine2d/internal/engine"
	"engine2d/internal/graphics"
	"engine2d/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const ShaderName = "quad"

// VertexShader passes the full-screen strip through and hands fragment
// coordinates in [0,1] to the fragment stage as v_uv.
const VertexShader = `#version 410 core
layout (location = 0) in vec2 a_pos;
out vec2 v_uv;
void main() {
    v_uv = a_pos * 0.5 + 0.5;
    gl_Position = vec4(a_pos, 0.0, 1.0);
}
`

// Quad runs a fragment shader over the whole viewport. The shader receives
// iTime (seconds of simulated time) and iResolution (pixels). Fragment
// sources passed to Submit replace the program on the next frame; a source
// that fails to compile leaves the current program in place.
type Quad struct {
	ctx     *engine.RenderContext
	shader  *graphics.Shader
	mesh    *graphics.Mesh
	sources chan string

	width, height float32
	generation    int
}

// New compiles fragmentSrc against the quad vertex shader.
func New(ctx *engine.RenderContext, fragmentSrc string, width, height int) (*Quad, error) {
	shader, err := graphics.NewShader(ctx, programName(0), VertexShader, fragmentSrc)
	if err != nil {
		return nil, err
	}
	mesh, err := graphics.NewMesh(graphics.QuadVertices, 2, false)
	if err != nil {
		shader.Delete()
		return nil, err
	}
	return &Quad{
		ctx:     ctx,
		shader:  shader,
		mesh:    mesh,
		sources: make(chan string, 1),
		width:   float32(width),
		height:  float32(height),
	}, nil
}

func programName(generation int) string {
	return fmt.Sprintf("%s#%d", ShaderName, generation)
}

// Submit queues a replacement fragment source. It may be called from any
// goroutine; only the latest pending source is kept.
func (q *Quad) Submit(src string) {
	for {
		select {
		case q.sources <- src:
			return
		default:
		}
		select {
		case <-q.sources:
		default:
		}
	}
}

// Generation counts successful reloads.
func (q *Quad) Generation() int { return q.generation }

// Resize updates the iResolution uniform. The window calls it on framebuffer
// size changes.
func (q *Quad) Resize(width, height int) {
	q.width, q.height = float32(width), float32(height)
}

func (q *Quad) reload(src string) {
	defer profiling.Track("quad.reload")()

	next, err := graphics.NewShader(q.ctx, programName(q.generation+1), VertexShader, src)
	if err != nil {
		log.Printf("shader reload failed, keeping previous program: %v", err)
		return
	}
	q.shader.Delete()
	q.shader = next
	q.generation++
	log.Printf("shader reloaded (generation %d)", q.generation)
}

// Draw picks up a pending source, then draws the quad.
func (q *Quad) Draw(ts time.Duration) {
	defer profiling.Track("quad.Draw")()

	select {
	case src := <-q.sources:
		q.reload(src)
	default:
	}

	gl.Disable(gl.DEPTH_TEST)
	q.shader.Use()
	q.shader.SetFloat("iTime", float32(ts.Seconds()))
	q.shader.SetVector2("iResolution", q.width, q.height)
	q.mesh.Draw(gl.TRIANGLE_STRIP)
}

// Dispose frees the mesh and the current program.
func (q *Quad) Dispose() {
	q.mesh.Delete()
	q.shader.Delete()
}
