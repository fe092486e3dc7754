package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"engine2d/internal/app"
	"engine2d/internal/config"
	"engine2d/internal/graphics/renderables/quad"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

var (
	configPath = flag.String("config", "configs/engine2d.toml", "TOML settings file")
	fragPath   = flag.String("frag", "assets/shaders/plasma.frag", "fragment shader to display")
	watch      = flag.Bool("watch", true, "reload the fragment shader when the file changes")
	showFPS    = flag.Bool("fps", false, "log the frame rate every second")
)

func main() {
	flag.Parse()
	defer closer.Close()

	settings, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	src, err := os.ReadFile(*fragPath)
	if err != nil {
		closer.Fatalln(err)
	}

	a, err := app.New(settings, *fragPath)
	if err != nil {
		closer.Fatalln(err)
	}
	a.ShowFPS = *showFPS

	q, err := quad.New(a.Context, string(src), a.Window.Width(), a.Window.Height())
	if err != nil {
		a.Close()
		closer.Fatalln(err)
	}

	if *watch {
		w, err := watchSource(*fragPath, q.Submit)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			closer.Bind(func() { w.Close() })
			log.Printf("watching %s", *fragPath)
		}
	}

	a.Run(q)
}
