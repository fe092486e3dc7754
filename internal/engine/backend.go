package engine

// Platform is the process-wide windowing and graphics system. A RenderContext
// owns exactly one and initializes it before any Surface is created.
type Platform interface {
	// SetErrorHandler installs the function the platform calls for
	// backend-level errors. It is called before Init.
	SetErrorHandler(h ErrorHook)
	Init() error
	Terminate()
	CreateSurface(cfg SurfaceConfig) (Surface, error)
	Shaders() ShaderAPI
}

// SurfaceConfig describes the native window and context to create.
type SurfaceConfig struct {
	Width        int
	Height       int
	Title        string
	SwapInterval int
	ContextMajor int
	ContextMinor int
	Transparent  bool
}

// Surface is a native window with a current graphics context.
type Surface interface {
	// Clear clears the color and depth planes with c.
	Clear(c Color)
	SwapBuffers()
	// PollEvents processes pending window system events and appends them
	// to dst in arrival order.
	PollEvents(dst []Event) []Event
	ShouldClose() bool
	SetShouldClose(v bool)
	Viewport(width, height int)
	CursorPos() (x, y float64)
	Destroy()
}

// ShaderType selects the stage of a shader object.
type ShaderType int

const (
	VertexShader ShaderType = iota
	FragmentShader
)

// ShaderAPI is the subset of the graphics API used by the compile/link
// pipeline. Compile and link report success plus the info log.
type ShaderAPI interface {
	CreateShader(t ShaderType) uint32
	CompileShader(shader uint32, source string) (ok bool, log string)
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32) (ok bool, log string)
	DeleteProgram(program uint32)
}
