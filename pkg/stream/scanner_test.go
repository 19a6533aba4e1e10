package stream

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerIteratesAllChunks(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	want := makeChunks(t, rng, 7)
	path := writeTestFile(t, want)

	p, err := OpenReadPort(path)
	require.NoError(t, err)
	defer p.Close()

	sc := NewScanner(p)
	var n int
	for sc.Next() {
		assert.True(t, chunksEqual(want[n], sc.Chunk()), "chunk %d differs", n)
		n++
	}
	assert.NoError(t, sc.Err())
	assert.Equal(t, len(want), n)
	assert.False(t, sc.Next(), "scanner must stay stopped after EOF")
}

func TestScannerSurfacesDecodeError(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	path := writeTestFile(t, makeChunks(t, rng, 2))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	cut := filepath.Join(t.TempDir(), "cut.qcsr")
	require.NoError(t, os.WriteFile(cut, raw[:len(raw)-3], 0o644))

	p, err := OpenReadPort(cut)
	require.NoError(t, err)
	defer p.Close()

	sc := NewScanner(p)
	var n int
	for sc.Next() {
		n++
	}
	assert.Error(t, sc.Err())
	assert.Equal(t, 1, n)
	assert.False(t, sc.Next())
}
