package stream

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcsr-io/qcsr/pkg/codec"
)

func TestWritePortWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.qcsr")

	p, err := OpenWritePort(path)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, codec.HeaderSize)
	assert.Equal(t, codec.Magic[:], raw[:8])
}

func TestWritePortWriteChunkByteCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.qcsr")

	p, err := OpenWritePort(path)
	require.NoError(t, err)
	defer p.Close()

	n, err := p.WriteChunk(codec.Chunk{
		Mask:  make(codec.BitMask, 10),
		Value: codec.Float32(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(16+10+4), n)
}

func TestWritePortWriteChunksAggregates(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	chunks := makeChunks(t, rng, 20)
	var want int64
	for _, c := range chunks {
		want += c.EncodedSize()
	}

	path := filepath.Join(t.TempDir(), "out.qcsr")
	p, err := OpenWritePort(path)
	require.NoError(t, err)

	n, err := p.WriteChunks(chunks)
	require.NoError(t, err)
	assert.Equal(t, want, n)
	require.NoError(t, p.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, codec.HeaderSize+want, info.Size())
}

func TestWritePortBorrowedStream(t *testing.T) {
	var buf bytes.Buffer

	p, err := NewWritePort(&buf)
	require.NoError(t, err)

	_, err = p.WriteChunk(codec.Chunk{Mask: codec.BitMask{true, true}, Value: codec.Int8(-3)})
	require.NoError(t, err)
	require.NoError(t, p.Close())

	// The borrowed buffer holds a complete stream readable by a port.
	rp, err := NewReadPort(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer rp.Close()

	c, err := rp.ReadChunk()
	require.NoError(t, err)
	assert.Equal(t, codec.BitMask{true, true}, c.Mask)
	assert.Equal(t, int8(-3), c.Value.AsInt8())
}

func TestWritePortFlushOnBorrowedStream(t *testing.T) {
	var buf bytes.Buffer

	p, err := NewWritePort(&buf)
	require.NoError(t, err)

	require.NoError(t, p.Flush())
	assert.Equal(t, codec.HeaderSize, buf.Len())
}

func TestWritePortCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.qcsr")

	p, err := OpenWritePort(path)
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	_, err = p.WriteChunk(codec.Chunk{Value: codec.Bool(true)})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, p.Flush(), ErrClosed)
}

func TestWritePortSeekToStartRewrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.qcsr")

	p, err := OpenWritePort(path)
	require.NoError(t, err)

	_, err = p.WriteChunk(codec.Chunk{Value: codec.Uint8(1)})
	require.NoError(t, err)

	require.NoError(t, p.SeekToStart())
	_, err = p.WriteChunk(codec.Chunk{Value: codec.Uint8(2)})
	require.NoError(t, err)
	require.NoError(t, p.Close())

	chunks, err := Load(path)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, uint8(2), chunks[0].Value.AsUint8())
}

func TestWritePortRejectsInvalidScalar(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewWritePort(&buf)
	require.NoError(t, err)
	defer p.Close()

	_, err = p.WriteChunk(codec.Chunk{})
	assert.ErrorIs(t, err, codec.ErrUnsupportedKind)
}
