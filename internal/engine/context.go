package engine

import (
	"errors"
	"fmt"
	"log"
)

// ErrPlatformInit wraps failures of the windowing system initialization.
var ErrPlatformInit = errors.New("platform initialization failed")

// ErrorHook receives backend-level errors. It must not panic; errors
// reported through it are never escalated.
type ErrorHook func(code int, msg string)

// LogErrorHook logs the error with the standard logger.
func LogErrorHook(code int, msg string) {
	log.Printf("backend error %d: %s", code, msg)
}

// RenderContext owns the windowing/graphics platform and the program
// registry. Create one per process, before any Window, and call Terminate
// only after every Window created from it has been destroyed. Terminating
// while a window loop is running is undefined.
type RenderContext struct {
	platform   Platform
	programs   *ProgramRegistry
	hook       ErrorHook
	terminated bool
}

// ContextOption configures a RenderContext.
type ContextOption func(*RenderContext)

// WithErrorHook replaces the default logging error hook.
func WithErrorHook(h ErrorHook) ContextOption {
	return func(c *RenderContext) {
		if h != nil {
			c.hook = h
		}
	}
}

// NewRenderContext initializes p and returns the context owning it.
// Initialization failure is fatal and exits the process.
func NewRenderContext(p Platform, opts ...ContextOption) *RenderContext {
	c, err := TryRenderContext(p, opts...)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	return c
}

// TryRenderContext is NewRenderContext returning the initialization error
// instead of exiting.
func TryRenderContext(p Platform, opts ...ContextOption) (*RenderContext, error) {
	c := &RenderContext{
		platform: p,
		programs: NewProgramRegistry(),
		hook:     LogErrorHook,
	}
	for _, opt := range opts {
		opt(c)
	}

	p.SetErrorHandler(c.ReportError)
	if err := p.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlatformInit, err)
	}
	return c, nil
}

// ReportError passes a backend error to the installed hook.
func (c *RenderContext) ReportError(code int, msg string) {
	c.hook(code, msg)
}

// AddShaderProgram registers handle under name. It returns
// ErrDuplicateProgram, leaving the registry unchanged, if the name is taken.
func (c *RenderContext) AddShaderProgram(name string, handle uint32) error {
	if err := c.programs.Add(name, handle); err != nil {
		return fmt.Errorf("add shader program %q: %w", name, err)
	}
	return nil
}

// ShaderProgram returns the handle registered under name.
func (c *RenderContext) ShaderProgram(name string) (uint32, bool) {
	return c.programs.Get(name)
}

// RemoveShaderProgram unregisters name. The caller still owns the program.
func (c *RenderContext) RemoveShaderProgram(name string) (uint32, bool) {
	return c.programs.Remove(name)
}

// Programs exposes the registry for inspection.
func (c *RenderContext) Programs() *ProgramRegistry {
	return c.programs
}

// CompileShaderFromSource compiles and links a program from source text.
// See CompileProgram.
func (c *RenderContext) CompileShaderFromSource(vertexSrc, fragmentSrc string) (uint32, error) {
	return CompileProgram(c.platform.Shaders(), vertexSrc, fragmentSrc)
}

// Shaders returns the platform's shader API.
func (c *RenderContext) Shaders() ShaderAPI {
	return c.platform.Shaders()
}

// Terminate releases the platform. Further calls are no-ops.
func (c *RenderContext) Terminate() {
	if c.terminated {
		return
	}
	c.terminated = true
	c.platform.Terminate()
}
