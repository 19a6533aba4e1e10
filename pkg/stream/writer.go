package stream

import (
	"bufio"
	"io"
	"os"

	"github.com/qcsr-io/qcsr/pkg/codec"
)

// WritePort appends chunks to a QCSR stream. The header is emitted once
// at open; after that the port is positioned to append chunks. Writes
// are buffered; Flush or Close pushes them down to the stream.
type WritePort struct {
	dst    io.Writer
	bw     *bufio.Writer
	file   *os.File // non-nil when the port owns the underlying stream
	closed bool
}

// OpenWritePort creates (or truncates) the file at path and writes the
// header. The port owns the file and closes it when the port is closed.
func OpenWritePort(path string) (*WritePort, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	p, err := newWritePort(f, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return p, nil
}

// NewWritePort wraps an already-open stream and writes the header. The
// port never closes w; that stays the caller's job.
func NewWritePort(w io.Writer) (*WritePort, error) {
	return newWritePort(w, nil)
}

func newWritePort(w io.Writer, owned *os.File) (*WritePort, error) {
	bw := bufio.NewWriter(w)
	if _, err := codec.EncodeHeader(bw); err != nil {
		return nil, err
	}
	return &WritePort{dst: w, bw: bw, file: owned}, nil
}

// WriteChunk appends one chunk and returns the bytes written.
func (p *WritePort) WriteChunk(c codec.Chunk) (int64, error) {
	if p.closed {
		return 0, ErrClosed
	}
	return codec.EncodeChunk(p.bw, c.Mask, c.Value)
}

// WriteChunks appends chunks in order and returns the aggregate bytes
// written. It aborts on the first failing chunk and propagates its
// error; bytes already written are not rolled back.
func (p *WritePort) WriteChunks(chunks []codec.Chunk) (int64, error) {
	var total int64
	for _, c := range chunks {
		n, err := p.WriteChunk(c)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Flush pushes buffered writes down to the stream and, when the port
// owns a file, syncs it to disk.
func (p *WritePort) Flush() error {
	if p.closed {
		return ErrClosed
	}
	if err := p.bw.Flush(); err != nil {
		return err
	}
	if p.file != nil {
		return p.file.Sync()
	}
	return nil
}

// SeekToStart repositions the port at the first chunk slot, just past
// the header. Chunks written afterwards overwrite the stream in place.
func (p *WritePort) SeekToStart() error {
	return p.seekTo(codec.HeaderSize, io.SeekStart)
}

// SeekToEnd repositions the port at end of stream for appending.
func (p *WritePort) SeekToEnd() error {
	return p.seekTo(0, io.SeekEnd)
}

func (p *WritePort) seekTo(offset int64, whence int) error {
	if p.closed {
		return ErrClosed
	}
	if err := p.bw.Flush(); err != nil {
		return err
	}
	s := seekerFor(p.dst)
	if s == nil {
		return ErrNotSeekable
	}
	if _, err := s.Seek(offset, whence); err != nil {
		return err
	}
	p.bw.Reset(p.dst)
	return nil
}

// Close flushes buffered writes and releases the underlying file if
// this port owns it. Closing a port built from a borrowed stream
// flushes but leaves the stream open. Close is safe to call more than
// once.
func (p *WritePort) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	ferr := p.bw.Flush()
	if p.file == nil {
		return ferr
	}
	if ferr != nil {
		p.file.Close()
		return ferr
	}
	if err := p.file.Sync(); err != nil {
		p.file.Close()
		return err
	}
	return p.file.Close()
}

// WithWritePort opens a write port over the file at path, invokes body
// with it and closes the port on every exit path. An error from body
// wins over an error from the close.
func WithWritePort(path string, body func(*WritePort) error) error {
	p, err := OpenWritePort(path)
	if err != nil {
		return err
	}
	err = body(p)
	if cerr := p.Close(); err == nil {
		err = cerr
	}
	return err
}
