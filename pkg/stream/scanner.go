package stream

import (
	"io"

	"github.com/qcsr-io/qcsr/pkg/codec"
)

// Scanner provides bufio.Scanner-style iteration over a read port's
// chunks. At a clean end of stream Next returns false and Err returns
// nil; a decode or I/O failure also stops the scan and is reported by
// Err. Callers that want skip-and-continue resilience operate at this
// single-chunk granularity instead of using ReadAll.
type Scanner struct {
	port  *ReadPort
	chunk codec.Chunk
	err   error
	done  bool
}

// NewScanner returns a scanner over p. The scanner does not close the
// port.
func NewScanner(p *ReadPort) *Scanner {
	return &Scanner{port: p}
}

// Next advances to the next chunk. It returns false when the stream is
// exhausted or a read fails.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	c, err := s.port.ReadChunk()
	if err == io.EOF {
		s.done = true
		return false
	}
	if err != nil {
		s.err = err
		s.done = true
		return false
	}
	s.chunk = c
	return true
}

// Chunk returns the chunk read by the last successful Next.
func (s *Scanner) Chunk() codec.Chunk {
	return s.chunk
}

// Err returns the first error encountered, or nil after a clean end of
// stream.
func (s *Scanner) Err() error {
	return s.err
}
