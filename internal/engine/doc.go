// Package engine is a minimal real-time rendering core: a RenderContext that
// owns the windowing system and a registry of shader programs, a Window that
// runs a fixed-step render loop and routes input, and a compile/link pipeline
// that never leaks intermediate shader objects.
//
// Typical use:
//
//	ctx := engine.NewRenderContext(glbackend.New())
//	defer ctx.Terminate()
//	win, ok := ctx.NewWindow(1280, 720)
//	if !ok {
//		return
//	}
//	defer win.Destroy()
//	prog, err := ctx.CompileShaderFromSource(vertexSrc, fragmentSrc)
//	...
//	win.SetDrawable(scene)
//	win.Run()
//
// Everything runs on one thread, which must be the locked main OS thread.
package engine
