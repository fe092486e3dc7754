package engine

import (
	"errors"
	"fmt"
)

// fakeShaderAPI tracks live shader and program objects and fails the stage
// named by failAt.
type fakeShaderAPI struct {
	failAt ShaderStage
	fail   bool

	next     uint32
	shaders  map[uint32]ShaderType
	programs map[uint32][]uint32
	calls    []string

	shaderCreates, shaderDeletes int
}

func newFakeShaderAPI() *fakeShaderAPI {
	return &fakeShaderAPI{
		shaders:  make(map[uint32]ShaderType),
		programs: make(map[uint32][]uint32),
	}
}

func failingShaderAPI(stage ShaderStage) *fakeShaderAPI {
	api := newFakeShaderAPI()
	api.fail = true
	api.failAt = stage
	return api
}

func (f *fakeShaderAPI) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeShaderAPI) CreateShader(t ShaderType) uint32 {
	id := f.id()
	f.shaders[id] = t
	f.shaderCreates++
	f.calls = append(f.calls, fmt.Sprintf("create shader %d", id))
	return id
}

func (f *fakeShaderAPI) CompileShader(shader uint32, source string) (bool, string) {
	f.calls = append(f.calls, fmt.Sprintf("compile %d", shader))
	t := f.shaders[shader]
	if f.fail && ((t == VertexShader && f.failAt == StageVertex) || (t == FragmentShader && f.failAt == StageFragment)) {
		return false, "0:1(1): error: syntax error\n"
	}
	return true, ""
}

func (f *fakeShaderAPI) DeleteShader(shader uint32) {
	f.calls = append(f.calls, fmt.Sprintf("delete shader %d", shader))
	if _, ok := f.shaders[shader]; ok {
		delete(f.shaders, shader)
		f.shaderDeletes++
	}
}

func (f *fakeShaderAPI) CreateProgram() uint32 {
	id := f.id()
	f.programs[id] = nil
	f.calls = append(f.calls, fmt.Sprintf("create program %d", id))
	return id
}

func (f *fakeShaderAPI) AttachShader(program, shader uint32) {
	f.programs[program] = append(f.programs[program], shader)
	f.calls = append(f.calls, fmt.Sprintf("attach %d %d", program, shader))
}

func (f *fakeShaderAPI) DetachShader(program, shader uint32) {
	attached := f.programs[program]
	for i, s := range attached {
		if s == shader {
			f.programs[program] = append(attached[:i], attached[i+1:]...)
			break
		}
	}
	f.calls = append(f.calls, fmt.Sprintf("detach %d %d", program, shader))
}

func (f *fakeShaderAPI) LinkProgram(program uint32) (bool, string) {
	f.calls = append(f.calls, fmt.Sprintf("link %d", program))
	if f.fail && f.failAt == StageLink {
		return false, "error: unresolved varying\n"
	}
	return true, ""
}

func (f *fakeShaderAPI) DeleteProgram(program uint32) {
	delete(f.programs, program)
	f.calls = append(f.calls, fmt.Sprintf("delete program %d", program))
}

// fakeSurface replays scripted events, one batch per PollEvents call, and
// asks to close after closeAfter swaps when closeAfter > 0.
type fakeSurface struct {
	batches    [][]Event
	closeAfter int

	swaps       int
	clears      []Color
	shouldClose bool
	destroyed   bool
	viewport    [2]int
	cursor      [2]float64

	onSwap func()
}

func (s *fakeSurface) Clear(c Color) { s.clears = append(s.clears, c) }

func (s *fakeSurface) SwapBuffers() {
	s.swaps++
	if s.onSwap != nil {
		s.onSwap()
	}
}

func (s *fakeSurface) PollEvents(dst []Event) []Event {
	if len(s.batches) > 0 {
		dst = append(dst, s.batches[0]...)
		s.batches = s.batches[1:]
	}
	if s.closeAfter > 0 && s.swaps >= s.closeAfter {
		s.shouldClose = true
	}
	return dst
}

func (s *fakeSurface) ShouldClose() bool         { return s.shouldClose }
func (s *fakeSurface) SetShouldClose(v bool)     { s.shouldClose = v }
func (s *fakeSurface) Viewport(width, height int) { s.viewport = [2]int{width, height} }
func (s *fakeSurface) CursorPos() (float64, float64) {
	return s.cursor[0], s.cursor[1]
}
func (s *fakeSurface) Destroy() { s.destroyed = true }

type fakePlatform struct {
	initErr    error
	surfaceErr error
	surface    *fakeSurface
	shaders    *fakeShaderAPI

	hook       ErrorHook
	inits      int
	terminates int
	lastConfig SurfaceConfig
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{surface: &fakeSurface{}, shaders: newFakeShaderAPI()}
}

func (p *fakePlatform) SetErrorHandler(h ErrorHook) { p.hook = h }

func (p *fakePlatform) Init() error {
	p.inits++
	return p.initErr
}

func (p *fakePlatform) Terminate() { p.terminates++ }

func (p *fakePlatform) CreateSurface(cfg SurfaceConfig) (Surface, error) {
	p.lastConfig = cfg
	if p.surfaceErr != nil {
		if p.hook != nil {
			p.hook(65543, p.surfaceErr.Error())
		}
		return nil, p.surfaceErr
	}
	return p.surface, nil
}

func (p *fakePlatform) Shaders() ShaderAPI { return p.shaders }

var errNoDisplay = errors.New("X11: failed to open display")
