// Package glbackend implements the engine backend on GLFW and OpenGL 4.1 core.
//
// All functions must be called from the main OS thread; callers lock it with
// runtime.LockOSThread in an init function.
package glbackend

import (
	"errors"
	"fmt"

	"engine2d/internal/engine"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Platform is the GLFW windowing system plus the OpenGL function loader.
type Platform struct {
	onError engine.ErrorHook
	glReady bool
}

// New returns an uninitialized platform. Pass it to engine.NewRenderContext.
func New() *Platform {
	return &Platform{onError: engine.LogErrorHook}
}

// SetErrorHandler installs the hook used for GLFW and GL errors.
func (p *Platform) SetErrorHandler(h engine.ErrorHook) {
	if h != nil {
		p.onError = h
	}
}

// Init initializes GLFW.
func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		p.report(err)
		return err
	}
	return nil
}

// Terminate destroys any remaining windows and releases GLFW.
func (p *Platform) Terminate() {
	glfw.Terminate()
}

// CreateSurface opens a window, makes its context current and loads the GL
// functions on first use.
func (p *Platform) CreateSurface(cfg engine.SurfaceConfig) (engine.Surface, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Transparent {
		glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		p.report(err)
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	if !p.glReady {
		if err := gl.Init(); err != nil {
			win.Destroy()
			return nil, fmt.Errorf("gl.Init failed: %w", err)
		}
		p.glReady = true
	}
	gl.Enable(gl.DEPTH_TEST)

	s := &surface{win: win, platform: p}
	s.installCallbacks()
	return s, nil
}

// Shaders returns the OpenGL shader API.
func (p *Platform) Shaders() engine.ShaderAPI {
	return shaderAPI{}
}

func (p *Platform) report(err error) {
	var gerr *glfw.Error
	if errors.As(err, &gerr) {
		p.onError(int(gerr.Code), gerr.Desc)
		return
	}
	p.onError(0, err.Error())
}

// drainGLErrors passes every pending GL error flag to the error hook.
func (p *Platform) drainGLErrors() {
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return
		}
		p.onError(int(code), glErrorString(code))
	}
}

func glErrorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("gl error 0x%x", code)
	}
}
