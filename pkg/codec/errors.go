package codec

import "errors"

// Errors. I/O errors from the underlying stream are passed through
// unmodified and are not part of this list.
var (
	// ErrBadMagic means the stream does not start with the QCSR magic.
	ErrBadMagic = errors.New("not a QCSR stream: bad magic")

	// ErrVersion means the stream was written by a newer format version
	// than this codec understands.
	ErrVersion = errors.New("unsupported format version")

	// ErrUnknownTag means a chunk carried a dtype tag outside 1..14.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrTypeMismatch means a typed decode found a dtype tag that differs
	// from the statically expected scalar kind.
	ErrTypeMismatch = errors.New("scalar type mismatch")

	// ErrUnsupportedKind means a caller asked to encode a scalar kind
	// outside the 14 supported kinds.
	ErrUnsupportedKind = errors.New("unsupported scalar kind")
)
