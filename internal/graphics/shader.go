package graphics

import (
	"fmt"
	"os"

	"engine2d/internal/engine"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked program registered in a RenderContext under Name.
type Shader struct {
	ID   uint32
	Name string

	ctx       *engine.RenderContext
	locations map[string]int32
}

// NewShader compiles a program from source and registers it under name.
// Nothing is leaked if compilation or registration fails.
func NewShader(ctx *engine.RenderContext, name, vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := ctx.CompileShaderFromSource(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	if err := ctx.AddShaderProgram(name, program); err != nil {
		ctx.Shaders().DeleteProgram(program)
		return nil, err
	}
	return &Shader{ID: program, Name: name, ctx: ctx, locations: make(map[string]int32)}, nil
}

// LoadShader reads vertex and fragment shader files and calls NewShader.
func LoadShader(ctx *engine.RenderContext, name, vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	return NewShader(ctx, name, string(vertexSource), string(fragmentSource))
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete unregisters and deletes the program.
func (s *Shader) Delete() {
	if s.ID == 0 {
		return
	}
	s.ctx.RemoveShaderProgram(s.Name)
	gl.DeleteProgram(s.ID)
	s.ID = 0
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVector2 sets a vec2 uniform
func (s *Shader) SetVector2(name string, x, y float32) {
	gl.Uniform2f(s.location(name), x, y)
}

// SetVector3 sets a vec3 uniform
func (s *Shader) SetVector3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.location(name), v[0], v[1], v[2])
}

// SetVector4 sets a vec4 uniform
func (s *Shader) SetVector4(name string, v mgl32.Vec4) {
	gl.Uniform4f(s.location(name), v[0], v[1], v[2], v[3])
}

// SetMatrix4 uploads m as 16 column-major floats, the layout mgl32 already
// stores, so no transpose is requested.
func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}
