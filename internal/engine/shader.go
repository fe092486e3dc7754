package engine

import (
	"fmt"
	"strings"
)

// ShaderStage identifies the step of the compile/link pipeline that failed.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageLink
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex shader compile"
	case StageFragment:
		return "fragment shader compile"
	case StageLink:
		return "program link"
	default:
		return fmt.Sprintf("ShaderStage(%d)", int(s))
	}
}

// CompileError reports which stage of CompileProgram failed and the driver's
// info log for it.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	msg := strings.TrimSpace(e.Log)
	if msg == "" {
		return e.Stage.String() + " failed"
	}
	return fmt.Sprintf("%s failed: %s", e.Stage, msg)
}

// CompileProgram compiles a vertex and a fragment shader and links them into
// a program. Intermediate shader objects are deleted on every return path,
// so only the returned program outlives the call. The caller owns it.
func CompileProgram(api ShaderAPI, vertexSrc, fragmentSrc string) (uint32, error) {
	vertex := api.CreateShader(VertexShader)
	if ok, log := api.CompileShader(vertex, vertexSrc); !ok {
		api.DeleteShader(vertex)
		return 0, &CompileError{Stage: StageVertex, Log: log}
	}

	fragment := api.CreateShader(FragmentShader)
	if ok, log := api.CompileShader(fragment, fragmentSrc); !ok {
		api.DeleteShader(vertex)
		api.DeleteShader(fragment)
		return 0, &CompileError{Stage: StageFragment, Log: log}
	}

	program := api.CreateProgram()
	api.AttachShader(program, vertex)
	api.AttachShader(program, fragment)
	ok, log := api.LinkProgram(program)

	api.DetachShader(program, vertex)
	api.DetachShader(program, fragment)
	api.DeleteShader(vertex)
	api.DeleteShader(fragment)

	if !ok {
		api.DeleteProgram(program)
		return 0, &CompileError{Stage: StageLink, Log: log}
	}
	return program, nil
}
