package label

import (
	"image/color"
	"slices"
	"time"

	"engine2d/internal/engine"
	"engine2d/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const vertexShader = `#version 410 core
layout (location = 0) in vec2 a_pos;
uniform vec4 u_rect;
out vec2 v_uv;
void main() {
    vec2 uv = a_pos * 0.5 + 0.5;
    v_uv = vec2(uv.x, 1.0 - uv.y);
    gl_Position = vec4(u_rect.xy + uv * u_rect.zw, 0.0, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec2 v_uv;
uniform sampler2D u_text;
out vec4 FragColor;
void main() {
    FragColor = texture(u_text, v_uv);
}
`

// Label draws a few lines of bitmap text at a fixed pixel position. The
// texture is rebuilt only when the text changes.
type Label struct {
	shader  *graphics.Shader
	mesh    *graphics.Mesh
	texture *graphics.Texture

	face  font.Face
	color color.Color
	lines []string
	dirty bool

	X, Y         float32 // pixels from the top-left corner
	Scale        float32
	viewW, viewH float32
}

// New creates a label registered under name for a viewW×viewH pixel view.
func New(ctx *engine.RenderContext, name string, viewW, viewH int) (*Label, error) {
	shader, err := graphics.NewShader(ctx, name, vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	mesh, err := graphics.NewMesh(graphics.QuadVertices, 2, false)
	if err != nil {
		shader.Delete()
		return nil, err
	}
	return &Label{
		shader: shader,
		mesh:   mesh,
		face:   basicfont.Face7x13,
		color:  color.White,
		X:      8,
		Y:      8,
		Scale:  2,
		viewW:  float32(viewW),
		viewH:  float32(viewH),
	}, nil
}

// SetText replaces the displayed lines.
func (l *Label) SetText(lines ...string) {
	if slices.Equal(lines, l.lines) {
		return
	}
	l.lines = slices.Clone(lines)
	l.dirty = true
}

// Resize sets the pixel size of the view the label is positioned in.
func (l *Label) Resize(width, height int) {
	l.viewW, l.viewH = float32(width), float32(height)
}

// Rect converts a pixel rectangle with a top-left origin into the
// normalized device rectangle (left, bottom, width, height).
func Rect(x, y, w, h, viewW, viewH float32) mgl32.Vec4 {
	nw := w / viewW * 2
	nh := h / viewH * 2
	left := x/viewW*2 - 1
	top := 1 - y/viewH*2
	return mgl32.Vec4{left, top - nh, nw, nh}
}

func (l *Label) Draw(time.Duration) {
	if l.dirty {
		img := graphics.RenderText(l.lines, l.face, l.color)
		if l.texture == nil {
			l.texture = graphics.NewTexture(img)
		} else {
			l.texture.Upload(img)
		}
		l.dirty = false
	}
	if l.texture == nil || len(l.lines) == 0 {
		return
	}

	w := float32(l.texture.Width) * l.Scale
	h := float32(l.texture.Height) * l.Scale

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	l.shader.Use()
	l.shader.SetVector4("u_rect", Rect(l.X, l.Y, w, h, l.viewW, l.viewH))
	l.shader.SetInt("u_text", 0)
	l.texture.Bind(0)
	l.mesh.Draw(gl.TRIANGLE_STRIP)

	gl.Disable(gl.BLEND)
}

func (l *Label) Dispose() {
	if l.texture != nil {
		l.texture.Delete()
	}
	l.mesh.Delete()
	l.shader.Delete()
}
