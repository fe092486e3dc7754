package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"engine2d/internal/app"
	"engine2d/internal/config"
	"engine2d/internal/graphics/renderables/automaton"
	"engine2d/internal/graphics/renderables/label"
	"engine2d/internal/life"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

var (
	configPath = flag.String("config", "configs/engine2d.toml", "TOML settings file")
	shaderDir  = flag.String("shaders", "", "shader directory, overrides the settings file")
	seedPath   = flag.String("pattern", "", "PNG or BMP image to seed the grid from; dark pixels are live")
	speed      = flag.Int("speed", 0, "frames per generation in units of 10, overrides the settings file")
	seed       = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	showFPS    = flag.Bool("fps", false, "log the frame rate every second")
)

func main() {
	flag.Parse()
	defer closer.Close()

	settings, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	if *speed > 0 {
		settings.Life.Speed = *speed
	}
	if *seedPath != "" {
		settings.Life.Pattern = *seedPath
	}
	if *seed != 0 {
		settings.Life.Seed = *seed
	}
	if settings.Life.Seed == 0 {
		settings.Life.Seed = time.Now().UnixNano()
	}

	opts := automaton.Options{
		Density:   settings.Life.Density,
		Seed:      settings.Life.Seed,
		PointSize: settings.Life.PointSize,
		Color:     mgl32.Vec4{0.95, 0.85, 0.3, 1},
	}
	grid := life.NewGrid(settings.Life.Columns, settings.Life.Rows)
	if settings.Life.Pattern != "" {
		pattern, err := life.LoadSeed(settings.Life.Pattern)
		if err != nil {
			closer.Fatalln(err)
		}
		opts.Pattern = pattern
		grid = life.NewGrid(max(grid.Width(), pattern.Width()), max(grid.Height(), pattern.Height()))
		grid.CopyFrom(pattern)
	}

	a, err := app.New(settings, "Game of Life")
	if err != nil {
		closer.Fatalln(err)
	}
	a.ShowFPS = *showFPS

	sim := life.NewSimulation(grid, config.GetLifeSpeed())
	gol, err := automaton.New(a.Context, a.ShaderDir(*shaderDir), sim, opts)
	if err != nil {
		a.Close()
		closer.Fatalln(err)
	}
	gol.Attach(a.Window)

	status, err := label.New(a.Context, "gol.status", a.Window.Width(), a.Window.Height())
	if err != nil {
		gol.Dispose()
		a.Close()
		closer.Fatalln(err)
	}

	log.Printf("%dx%d grid, %d live cells", grid.Width(), grid.Height(), grid.Population())
	log.Println("Space pauses, N steps, R reseeds, C clears, +/- or scroll change speed, click toggles a cell, Esc quits")
	a.Run(app.Layers{gol, &statusLine{sim: sim, label: status}})
	log.Printf("stopped after %d generations", sim.Generation())
}

// statusLine shows the simulation counters in the top-left corner.
type statusLine struct {
	sim   *life.Simulation
	label *label.Label
}

func (s *statusLine) Draw(ts time.Duration) {
	state := "running"
	if s.sim.Paused() {
		state = "paused"
	}
	s.label.SetText(
		fmt.Sprintf("generation %d", s.sim.Generation()),
		fmt.Sprintf("population %d", s.sim.Grid.Population()),
		fmt.Sprintf("speed %d (%s)", s.sim.Speed(), state),
	)
	s.label.Draw(ts)
}

func (s *statusLine) Dispose() { s.label.Dispose() }
