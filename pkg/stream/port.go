package stream

import (
	"errors"
	"io"
)

// Errors
var (
	// ErrClosed is returned by operations on a closed port.
	ErrClosed = errors.New("port is closed")

	// ErrNotSeekable is returned when a seek is requested on a borrowed
	// stream that does not implement io.Seeker.
	ErrNotSeekable = errors.New("stream does not support seeking")
)

// seekerFor returns the seeker backing a port's stream, or nil.
func seekerFor(v interface{}) io.Seeker {
	if s, ok := v.(io.Seeker); ok {
		return s
	}
	return nil
}
