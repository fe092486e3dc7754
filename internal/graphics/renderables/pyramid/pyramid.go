package pyramid

import (
	"math"
	"path/filepath"
	"time"

	"engine2d/internal/engine"
	"engine2d/internal/graphics"
	"engine2d/internal/input"
	"engine2d/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	ShaderName = "pyramid"
	VertShader = "pyramid.vert"
	FragShader = "pyramid.frag"
)

const (
	rotateSpeed     = 1.5 // radians per second
	zoomSpeed       = 2.0 // units per second
	minDistance     = 1.2
	maxDistance     = 10.0
	defaultDistance = 2.5
	spinPeriod      = 6.0 // seconds per turn
	maxPitch        = math.Pi/2 - 0.01
)

// View is the camera state of the pyramid demo.
type View struct {
	Yaw, Pitch float32
	Distance   float32
	Spin       float32
	Spinning   bool
}

// DefaultView looks at the pyramid from slightly above with the idle spin on.
func DefaultView() View {
	return View{Pitch: 0.3, Distance: defaultDistance, Spinning: true}
}

// Pyramid draws a spinning square pyramid that the arrow keys rotate.
type Pyramid struct {
	shader *graphics.Shader
	mesh   *graphics.Mesh
	input  *input.InputManager
	aspect float32

	view View
	spin *gween.Tween
	last time.Duration
}

// New compiles the pyramid shader from shaderDir. im may be nil for a
// non-interactive pyramid.
func New(ctx *engine.RenderContext, shaderDir string, aspect float32, im *input.InputManager) (*Pyramid, error) {
	shader, err := graphics.LoadShader(ctx, ShaderName,
		filepath.Join(shaderDir, VertShader), filepath.Join(shaderDir, FragShader))
	if err != nil {
		return nil, err
	}
	mesh, err := graphics.NewMesh(graphics.PyramidVertices, 3, false)
	if err != nil {
		shader.Delete()
		return nil, err
	}

	p := newPyramid(aspect, im)
	p.shader = shader
	p.mesh = mesh
	return p, nil
}

func newPyramid(aspect float32, im *input.InputManager) *Pyramid {
	if aspect <= 0 {
		aspect = 1
	}
	return &Pyramid{
		input:  im,
		aspect: aspect,
		view:   DefaultView(),
		spin:   newSpin(),
	}
}

func newSpin() *gween.Tween {
	return gween.New(0, 2*math.Pi, spinPeriod, ease.InOutQuad)
}

// View returns the current camera state.
func (p *Pyramid) View() View { return p.view }

// Transform builds the clip-space transform for the given view: a 45° perspective
// projection, a camera on the +Z axis at v.Distance and the model rotated by
// yaw plus spin around Y, then by pitch around X.
func Transform(aspect float32, v View) mgl32.Mat4 {
	projection := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, v.Distance}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	model := mgl32.HomogRotate3DX(v.Pitch).Mul4(mgl32.HomogRotate3DY(v.Yaw + v.Spin))
	return projection.Mul4(view).Mul4(model)
}

// update advances the view by dt seconds of simulated time.
func (p *Pyramid) update(dt float32) {
	if im := p.input; im != nil {
		if im.IsActive(input.ActionRotateLeft) {
			p.view.Yaw -= rotateSpeed * dt
		}
		if im.IsActive(input.ActionRotateRight) {
			p.view.Yaw += rotateSpeed * dt
		}
		if im.IsActive(input.ActionRotateUp) {
			p.view.Pitch -= rotateSpeed * dt
		}
		if im.IsActive(input.ActionRotateDown) {
			p.view.Pitch += rotateSpeed * dt
		}
		if im.IsActive(input.ActionZoomIn) {
			p.view.Distance -= zoomSpeed * dt
		}
		if im.IsActive(input.ActionZoomOut) {
			p.view.Distance += zoomSpeed * dt
		}
		if im.JustPressed(input.ActionResetView) {
			spinning := p.view.Spinning
			p.view = DefaultView()
			p.view.Spinning = spinning
			p.spin = newSpin()
		}
		if im.JustPressed(input.ActionToggleSpin) {
			p.view.Spinning = !p.view.Spinning
		}
		im.PostUpdate()
	}

	p.view.Pitch = mgl32.Clamp(p.view.Pitch, -maxPitch, maxPitch)
	p.view.Distance = mgl32.Clamp(p.view.Distance, minDistance, maxDistance)

	if p.view.Spinning {
		angle, done := p.spin.Update(dt)
		p.view.Spin = angle
		if done {
			p.spin = newSpin()
			p.view.Spin = 0
		}
	}
}

// Draw advances the view by the time since the previous frame and draws the
// pyramid.
func (p *Pyramid) Draw(ts time.Duration) {
	defer profiling.Track("pyramid.Draw")()

	dt := float32((ts - p.last).Seconds())
	p.last = ts
	p.update(dt)

	gl.Enable(gl.DEPTH_TEST)
	p.shader.Use()
	p.shader.SetMatrix4("u_transform", Transform(p.aspect, p.view))
	p.mesh.Draw(gl.TRIANGLES)
}

// Dispose frees the mesh and the shader program.
func (p *Pyramid) Dispose() {
	if p.mesh != nil {
		p.mesh.Delete()
	}
	if p.shader != nil {
		p.shader.Delete()
	}
}
