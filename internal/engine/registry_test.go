package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRejectsDuplicateWithoutMutation(t *testing.T) {
	r := NewProgramRegistry()
	require.NoError(t, r.Add("pyramid", 7))

	err := r.Add("pyramid", 9)
	assert.ErrorIs(t, err, ErrDuplicateProgram)

	h, ok := r.Get("pyramid")
	assert.True(t, ok)
	assert.Equal(t, uint32(7), h)
	assert.Equal(t, 1, r.Len())
}

// Names are unique under exact equality. A name that is a substring of a
// registered one is a different name.
func TestRegistryUsesExactEquality(t *testing.T) {
	r := NewProgramRegistry()
	require.NoError(t, r.Add("life_points", 1))
	require.NoError(t, r.Add("life", 2))
	require.NoError(t, r.Add("points", 3))

	assert.Equal(t, []string{"life", "life_points", "points"}, r.Names())

	_, ok := r.Get("life_")
	assert.False(t, ok)
}

func TestRegistrySequencesKeepNamesUnique(t *testing.T) {
	r := NewProgramRegistry()
	names := []string{"a", "b", "a", "c", "b", "a", "d"}
	accepted := map[string]uint32{}

	for i, name := range names {
		err := r.Add(name, uint32(i+1))
		if _, seen := accepted[name]; seen {
			assert.True(t, errors.Is(err, ErrDuplicateProgram), "name %q", name)
			continue
		}
		require.NoError(t, err)
		accepted[name] = uint32(i + 1)
	}

	assert.Equal(t, len(accepted), r.Len())
	for name, want := range accepted {
		got, ok := r.Get(name)
		assert.True(t, ok)
		assert.Equal(t, want, got, "name %q keeps its first handle", name)
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewProgramRegistry()
	require.NoError(t, r.Add("quad", 4))

	h, ok := r.Remove("quad")
	assert.True(t, ok)
	assert.Equal(t, uint32(4), h)

	_, ok = r.Remove("quad")
	assert.False(t, ok)
	assert.NoError(t, r.Add("quad", 5))
}
