package automaton

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"engine2d/internal/config"
	"engine2d/internal/graphics"
	"engine2d/internal/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsApplyOnUpdate(t *testing.T) {
	defer config.SetLifeSpeed(config.GetLifeSpeed())
	config.SetLifeSpeed(config.MaxLifeSpeed)

	g := life.NewGrid(8, 8)
	g.Set(0, 0, true)
	a := newAutomaton(life.NewSimulation(g, 1), Options{})
	a.dirty = false

	require.True(t, a.Send(Event{Command: CommandToggle, X: 3, Y: 4}))
	assert.False(t, g.Alive(3, 4), "commands wait for the next frame")

	a.update()
	assert.True(t, g.Alive(3, 4))
	assert.True(t, a.dirty)

	a.Send(Event{Command: CommandPause})
	a.update()
	assert.True(t, a.sim.Paused())

	a.Send(Event{Command: CommandClear})
	a.update()
	assert.Zero(t, g.Population())
}

func TestStepCommandCountsGeneration(t *testing.T) {
	g := life.NewGrid(5, 5)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)
	a := newAutomaton(life.NewSimulation(g, 1), Options{})

	a.Send(Event{Command: CommandPause})
	a.Send(Event{Command: CommandStep})
	a.update()

	assert.True(t, g.Alive(2, 1) && g.Alive(2, 3), "blinker turned vertical")
	assert.Equal(t, 1, a.sim.Generation())
}

func TestReseedUsesPattern(t *testing.T) {
	pattern := life.NewGrid(3, 3)
	pattern.Set(1, 0, true)
	pattern.Set(1, 1, true)
	pattern.Set(1, 2, true)

	g := life.NewGrid(6, 6)
	a := newAutomaton(life.NewSimulation(g, 1), Options{Pattern: pattern})
	assert.Equal(t, 3, g.Population(), "empty grid is seeded on creation")

	g.Clear()
	a.Send(Event{Command: CommandReseed})
	a.update()
	assert.Equal(t, [][2]int{{1, 0}, {1, 1}, {1, 2}}, g.LiveCells())
}

func TestSimulationFollowsConfiguredSpeed(t *testing.T) {
	defer config.SetLifeSpeed(config.GetLifeSpeed())
	config.SetLifeSpeed(2)

	g := life.NewGrid(5, 5)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)
	a := newAutomaton(life.NewSimulation(g, 9), Options{})

	for i := 0; i < 2*life.BaseFrames; i++ {
		a.update()
	}
	assert.Equal(t, 1, a.sim.Generation())
	assert.Equal(t, 2, a.sim.Speed())
}

func TestSendDropsWhenFull(t *testing.T) {
	a := newAutomaton(life.NewSimulation(life.NewGrid(2, 2), 1), Options{})
	for i := 0; i < cap(a.events); i++ {
		require.True(t, a.Send(Event{Command: CommandStep}))
	}
	assert.False(t, a.Send(Event{Command: CommandStep}))
}

func TestUploadFailureLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	a := newAutomaton(life.NewSimulation(life.NewGrid(4, 4), 1), Options{})
	// zero components per vertex: Update fails before touching GL
	a.mesh = &graphics.Mesh{}

	for i := 0; i < 3; i++ {
		a.upload()
	}

	assert.True(t, a.dirty, "failed upload is retried")
	assert.Equal(t, 1, strings.Count(buf.String(), "point upload failed"))
}
