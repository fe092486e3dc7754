package automaton

import (
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"engine2d/internal/config"
	"engine2d/internal/engine"
	"engine2d/internal/graphics"
	"engine2d/internal/life"
	"engine2d/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const ShaderName = "automaton"

// Shader files, relative to the shader directory
const (
	VertShader = "automaton.vert"
	FragShader = "automaton.frag"
)

// Command is a request forwarded from an input callback to the automaton.
type Command int

const (
	CommandToggle Command = iota
	CommandPause
	CommandReseed
	CommandClear
	CommandStep
)

// Event carries a Command and, for CommandToggle, the target cell.
type Event struct {
	Command Command
	X, Y    int
}

// Options configures the automaton drawable.
type Options struct {
	Density   float64
	Seed      int64
	PointSize float32
	Color     mgl32.Vec4
	// Pattern, when set, is used for every reseed instead of a random fill.
	Pattern *life.Grid
}

// Automaton draws a life.Simulation as one point per live cell. The grid is
// re-uploaded only when it changes; every other frame redraws the cached
// points.
type Automaton struct {
	sim    *life.Simulation
	rng    *rand.Rand
	opts   Options
	events chan Event
	dirty  bool
	points []float32
	shader *graphics.Shader
	mesh   *graphics.Mesh

	uploadFailed bool
}

// New compiles the point shader from shaderDir and seeds sim's grid.
func New(ctx *engine.RenderContext, shaderDir string, sim *life.Simulation, opts Options) (*Automaton, error) {
	shader, err := graphics.LoadShader(ctx, ShaderName,
		filepath.Join(shaderDir, VertShader), filepath.Join(shaderDir, FragShader))
	if err != nil {
		return nil, err
	}
	mesh, err := graphics.NewMesh(nil, 2, true)
	if err != nil {
		shader.Delete()
		return nil, err
	}

	a := newAutomaton(sim, opts)
	a.shader = shader
	a.mesh = mesh
	return a, nil
}

func newAutomaton(sim *life.Simulation, opts Options) *Automaton {
	if opts.PointSize <= 0 {
		opts.PointSize = 4
	}
	if opts.Color == (mgl32.Vec4{}) {
		opts.Color = mgl32.Vec4{0.95, 0.85, 0.3, 1}
	}
	a := &Automaton{
		sim:    sim,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		opts:   opts,
		events: make(chan Event, 64),
	}
	if sim.Grid.Population() == 0 {
		a.reseed()
	}
	a.dirty = true
	return a
}

// Send queues ev for the next Draw. It reports false if the queue is full.
func (a *Automaton) Send(ev Event) bool {
	select {
	case a.events <- ev:
		return true
	default:
		return false
	}
}

// Simulation returns the simulation being drawn.
func (a *Automaton) Simulation() *life.Simulation { return a.sim }

// Attach registers the automaton's controls on w: Space pauses, N steps
// once, R reseeds, C clears, +/- and the scroll wheel change speed and the
// left mouse button toggles the cell under the cursor.
func (a *Automaton) Attach(w *engine.Window) {
	onPress := func(cmd Command) engine.KeyCallback {
		return func(_ engine.Key, _ int, action engine.Action, _ engine.ModifierKey) {
			if action == engine.Press {
				a.Send(Event{Command: cmd})
			}
		}
	}
	w.SetKeyCallback(engine.KeySpace, onPress(CommandPause))
	w.SetKeyCallback(engine.KeyN, onPress(CommandStep))
	w.SetKeyCallback(engine.KeyR, onPress(CommandReseed))
	w.SetKeyCallback(engine.KeyC, onPress(CommandClear))

	faster := func(_ engine.Key, _ int, action engine.Action, _ engine.ModifierKey) {
		if action != engine.Release {
			config.SetLifeSpeed(config.GetLifeSpeed() - 1)
		}
	}
	slower := func(_ engine.Key, _ int, action engine.Action, _ engine.ModifierKey) {
		if action != engine.Release {
			config.SetLifeSpeed(config.GetLifeSpeed() + 1)
		}
	}
	w.SetKeyCallback(engine.KeyEqual, faster)
	w.SetKeyCallback(engine.KeyKPAdd, faster)
	w.SetKeyCallback(engine.KeyMinus, slower)
	w.SetKeyCallback(engine.KeyKPSubtract, slower)

	w.SetScrollCallback(func(_, yoff float64) {
		switch {
		case yoff > 0:
			config.SetLifeSpeed(config.GetLifeSpeed() - 1)
		case yoff < 0:
			config.SetLifeSpeed(config.GetLifeSpeed() + 1)
		}
	})

	w.SetMouseButtonCallback(engine.MouseButtonLeft, func(_ engine.MouseButton, action engine.Action, _ engine.ModifierKey) {
		if action != engine.Press {
			return
		}
		cx, cy := w.CursorPos()
		if x, y, ok := a.sim.Grid.CellAt(cx, cy, w.Width(), w.Height()); ok {
			a.Send(Event{Command: CommandToggle, X: x, Y: y})
		}
	})
}

// Draw applies queued commands, advances the simulation and draws the
// live cells.
func (a *Automaton) Draw(_ time.Duration) {
	defer profiling.Track("automaton.Draw")()

	a.update()
	a.upload()

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	a.shader.Use()
	a.shader.SetFloat("u_pointSize", a.opts.PointSize)
	a.shader.SetVector4("u_color", a.opts.Color)
	a.mesh.Draw(gl.POINTS)
}

// upload refreshes the point mesh when the grid changed. A failed upload is
// retried next frame and logged only once until it succeeds.
func (a *Automaton) upload() {
	if !a.dirty {
		return
	}
	a.points = a.sim.Grid.Points(a.points[:0])
	if err := a.mesh.Update(a.points); err != nil {
		if !a.uploadFailed {
			log.Printf("automaton: point upload failed: %v", err)
			a.uploadFailed = true
		}
		return
	}
	a.dirty = false
	a.uploadFailed = false
}

// update drains pending commands and advances the simulation by one frame.
func (a *Automaton) update() {
	for drained := false; !drained; {
		select {
		case ev := <-a.events:
			a.apply(ev)
		default:
			drained = true
		}
	}

	a.sim.SetSpeed(config.GetLifeSpeed())
	if a.sim.Advance() {
		a.dirty = true
	}
}

func (a *Automaton) apply(ev Event) {
	switch ev.Command {
	case CommandToggle:
		a.sim.Grid.Toggle(ev.X, ev.Y)
	case CommandPause:
		a.sim.SetPaused(!a.sim.Paused())
		return
	case CommandReseed:
		a.reseed()
	case CommandClear:
		a.sim.Grid.Clear()
	case CommandStep:
		a.sim.Step()
	}
	a.dirty = true
}

func (a *Automaton) reseed() {
	if a.opts.Pattern != nil {
		a.sim.Grid.CopyFrom(a.opts.Pattern)
		return
	}
	a.sim.Grid.Randomize(a.rng, a.opts.Density)
}

// Dispose frees the mesh and the shader program.
func (a *Automaton) Dispose() {
	if a.mesh != nil {
		a.mesh.Delete()
	}
	if a.shader != nil {
		a.shader.Delete()
	}
}
