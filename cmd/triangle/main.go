package main

import (
	"log"
	"runtime"
	"time"

	"engine2d/internal/app"
	"engine2d/internal/config"
	"engine2d/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/xlab/closer"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

func init() {
	runtime.LockOSThread()
}

// Minimal shaders
const vertexSrc = `#version 410 core
layout(location = 0) in vec2 position;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
}`

const fragmentSrc = `#version 410 core
out vec4 fragColor;
void main() {
	fragColor = vec4(0.0, 1.0, 0.0, 1.0);
}`

// triangle is the smallest possible scene: one static buffer, one draw call.
type triangle struct {
	shader *graphics.Shader
	mesh   *graphics.Mesh
}

func (t *triangle) Draw(time.Duration) {
	t.shader.Use()
	t.mesh.Draw(gl.TRIANGLES)
}

func (t *triangle) Dispose() {
	t.mesh.Delete()
	t.shader.Delete()
}

func main() {
	defer closer.Close()

	settings := config.Default()
	settings.Window.Width = windowWidth
	settings.Window.Height = windowHeight
	// Disable VSync for max raw framerate
	settings.Window.SwapInterval = 0
	settings.Window.Transparent = false
	settings.Window.ClearColor = [4]float32{0, 0, 0, 1}

	a, err := app.New(settings, "OpenGL 4.1 - Single Triangle (Max Perf)")
	if err != nil {
		closer.Fatalln(err)
	}
	a.ShowFPS = true

	shader, err := graphics.NewShader(a.Context, "triangle", vertexSrc, fragmentSrc)
	if err != nil {
		a.Close()
		closer.Fatalln(err)
	}
	mesh, err := graphics.NewMesh(graphics.TriangleVertices, 2, false)
	if err != nil {
		shader.Delete()
		a.Close()
		closer.Fatalln(err)
	}

	log.Println("Esc quits")
	a.Run(&triangle{shader: shader, mesh: mesh})
}
