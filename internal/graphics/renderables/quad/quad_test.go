package quad

import (
	"testing"

	"engine2d/internal/engine"

	"github.com/stretchr/testify/assert"
)

func TestSubmitKeepsLatest(t *testing.T) {
	q := &Quad{sources: make(chan string, 1)}

	q.Submit("first")
	q.Submit("second")

	assert.Equal(t, "second", <-q.sources)
	select {
	case src := <-q.sources:
		t.Fatalf("unexpected pending source %q", src)
	default:
	}
}

func TestProgramNamesAreUnique(t *testing.T) {
	assert.Equal(t, "quad#0", programName(0))
	assert.NotEqual(t, programName(1), programName(2))
}

func TestResizeUpdatesResolution(t *testing.T) {
	q := &Quad{width: 800, height: 600}
	var r engine.Resizer = q
	r.Resize(1920, 1080)
	assert.Equal(t, float32(1920), q.width)
	assert.Equal(t, float32(1080), q.height)
}
