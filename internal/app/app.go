package app

import (
	"errors"
	"log"

	"engine2d/internal/config"
	"engine2d/internal/engine"
	"engine2d/internal/engine/glbackend"
)

// App owns the render context and window of a demo binary.
type App struct {
	Settings config.Settings
	Context  *engine.RenderContext
	Window   *engine.Window

	// ShowFPS logs the frame rate once per second while running.
	ShowFPS bool
}

// New applies settings, opens the GLFW/OpenGL context and creates the
// window. title overrides the configured title when not empty.
func New(settings config.Settings, title string) (*App, error) {
	settings.Apply()

	ctx, err := engine.TryRenderContext(glbackend.New())
	if err != nil {
		return nil, err
	}

	cfg := settings.WindowConfig()
	if title != "" {
		cfg.Title = title
	}
	w, ok := ctx.NewWindowConfig(cfg)
	if !ok {
		ctx.Terminate()
		return nil, errors.New("could not create window")
	}
	w.SetClearColor(settings.ClearColor())

	return &App{Settings: settings, Context: ctx, Window: w}, nil
}

// ShaderDir returns override, or the configured shader directory when
// override is empty.
func (a *App) ShaderDir(override string) string {
	if override != "" {
		return override
	}
	return a.Settings.Shaders.Dir
}

// Aspect returns the window's width over height.
func (a *App) Aspect() float32 {
	return float32(a.Window.Width()) / float32(a.Window.Height())
}

// Run installs d, runs the loop until the window closes and releases
// everything.
func (a *App) Run(d engine.Drawable) {
	frame := NewFrame(d)
	if a.ShowFPS {
		frame.Counter = NewFPSCounter(func(fps int) { log.Printf("FPS: %d", fps) })
	}
	a.Window.SetDrawable(frame)
	a.Window.Run()
	a.Close()
}

// Close destroys the window and terminates the context. It is safe to call
// more than once.
func (a *App) Close() {
	a.Window.Destroy()
	a.Context.Terminate()
}
