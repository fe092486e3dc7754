package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchSourceReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "effect.frag")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	got := make(chan string, 8)
	w, err := watchSource(path, func(src string) { got <- src })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.frag"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))

	select {
	case src := <-got:
		assert.Equal(t, "v2", src)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatchSourceMissingDir(t *testing.T) {
	_, err := watchSource(filepath.Join(t.TempDir(), "missing", "effect.frag"), func(string) {})
	assert.Error(t, err)
}
