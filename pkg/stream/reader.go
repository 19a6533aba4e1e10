package stream

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/qcsr-io/qcsr/pkg/codec"
)

// ReadPort provides sequential chunk-level access to a QCSR stream.
// The header is consumed once at open; its magic and version are kept
// for callers that want them but are not validated on the generic read
// path (typed call sites validate via codec.CheckHeader).
type ReadPort struct {
	src     io.Reader
	br      *bufio.Reader
	file    *os.File // non-nil when the port owns the underlying stream
	closed  bool
	magic   [8]byte
	version uint32
}

// OpenReadPort opens the file at path for reading. The port owns the
// file and closes it when the port is closed.
func OpenReadPort(path string) (*ReadPort, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	p, err := newReadPort(f, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return p, nil
}

// NewReadPort wraps an already-open stream. The port never closes r;
// that stays the caller's job.
func NewReadPort(r io.Reader) (*ReadPort, error) {
	return newReadPort(r, nil)
}

func newReadPort(r io.Reader, owned *os.File) (*ReadPort, error) {
	br := bufio.NewReader(r)
	magic, version, err := codec.DecodeHeader(br)
	if err != nil {
		return nil, err
	}
	return &ReadPort{src: r, br: br, file: owned, magic: magic, version: version}, nil
}

// Magic returns the magic bytes read from the header.
func (p *ReadPort) Magic() [8]byte {
	return p.magic
}

// Version returns the version read from the header.
func (p *ReadPort) Version() uint32 {
	return p.version
}

// EOF reports whether the port is positioned at end of stream.
func (p *ReadPort) EOF() bool {
	if p.closed {
		return true
	}
	_, err := p.br.Peek(1)
	return err == io.EOF
}

// ReadChunk reads the next chunk. At a clean end of stream it returns
// io.EOF; a chunk truncated mid-record surfaces as an error instead.
func (p *ReadPort) ReadChunk() (codec.Chunk, error) {
	if p.closed {
		return codec.Chunk{}, ErrClosed
	}
	return codec.DecodeChunk(p.br)
}

// ReadChunkAs reads the next chunk and fails with codec.ErrTypeMismatch
// when its scalar kind differs from the expected one.
func (p *ReadPort) ReadChunkAs(kind codec.ScalarKind) (codec.Chunk, error) {
	if p.closed {
		return codec.Chunk{}, ErrClosed
	}
	return codec.DecodeChunkAs(p.br, kind)
}

// ReadChunks reads exactly n chunks, in arrival order. It fails if fewer
// than n chunks remain before end of stream.
func (p *ReadPort) ReadChunks(n int) ([]codec.Chunk, error) {
	chunks := make([]codec.Chunk, 0, n)
	for i := 0; i < n; i++ {
		c, err := p.ReadChunk()
		if err == io.EOF {
			return nil, fmt.Errorf("read %d of %d chunks: %w", i, n, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// ReadAll reads every remaining chunk, preserving arrival order, and
// stops cleanly at end of stream. A truncated or corrupt chunk aborts
// the whole read.
func (p *ReadPort) ReadAll() ([]codec.Chunk, error) {
	var chunks []codec.Chunk
	for {
		c, err := p.ReadChunk()
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
}

// SeekToStart repositions the port at the first chunk, just past the
// header. It fails with ErrNotSeekable on a borrowed stream that cannot
// seek.
func (p *ReadPort) SeekToStart() error {
	return p.seekTo(codec.HeaderSize, io.SeekStart)
}

// SeekToEnd repositions the port at end of stream.
func (p *ReadPort) SeekToEnd() error {
	return p.seekTo(0, io.SeekEnd)
}

func (p *ReadPort) seekTo(offset int64, whence int) error {
	if p.closed {
		return ErrClosed
	}
	s := seekerFor(p.src)
	if s == nil {
		return ErrNotSeekable
	}
	if _, err := s.Seek(offset, whence); err != nil {
		return err
	}
	p.br.Reset(p.src)
	return nil
}

// Close releases the underlying file if this port owns it. Closing a
// port built from a borrowed stream leaves that stream open. Close is
// safe to call more than once.
func (p *ReadPort) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// WithReadPort opens a read port over the file at path, invokes body
// with it and closes the port on every exit path. An error from body
// wins over an error from the close.
func WithReadPort(path string, body func(*ReadPort) error) error {
	p, err := OpenReadPort(path)
	if err != nil {
		return err
	}
	err = body(p)
	if cerr := p.Close(); err == nil {
		err = cerr
	}
	return err
}
