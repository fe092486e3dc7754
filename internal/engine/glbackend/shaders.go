package glbackend

import (
	"strings"

	"engine2d/internal/engine"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type shaderAPI struct{}

func (shaderAPI) CreateShader(t engine.ShaderType) uint32 {
	if t == engine.FragmentShader {
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return gl.CreateShader(gl.VERTEX_SHADER)
}

func (shaderAPI) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (shaderAPI) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (shaderAPI) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (shaderAPI) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (shaderAPI) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (shaderAPI) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (shaderAPI) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}
