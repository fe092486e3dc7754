package main

import (
	"flag"
	"log"
	"runtime"

	"engine2d/internal/app"
	"engine2d/internal/config"
	"engine2d/internal/graphics/renderables/pyramid"
	"engine2d/internal/input"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

var (
	configPath = flag.String("config", "configs/engine2d.toml", "TOML settings file")
	shaderDir  = flag.String("shaders", "", "shader directory, overrides the settings file")
	showFPS    = flag.Bool("fps", false, "log the frame rate every second")
)

func main() {
	flag.Parse()
	defer closer.Close()

	settings, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}

	a, err := app.New(settings, "")
	if err != nil {
		closer.Fatalln(err)
	}
	a.ShowFPS = *showFPS

	im := input.NewInputManager()
	im.Attach(a.Window)

	p, err := pyramid.New(a.Context, a.ShaderDir(*shaderDir), a.Aspect(), im)
	if err != nil {
		a.Close()
		closer.Fatalln(err)
	}

	log.Println("arrows/WASD rotate, +/- zoom, R resets the view, Space toggles the spin, Esc quits")
	a.Run(p)
}
