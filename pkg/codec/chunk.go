package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// chunkHeaderSize is the fixed per-chunk prologue: u64 length, one dtype
// tag byte, seven pad bytes keeping the mask 8-byte aligned.
const chunkHeaderSize = 16

// BitMask is an ordered sequence of booleans of caller-chosen length.
// On disk each element occupies one full byte (0x00 or 0x01); the
// representation is intentionally unpacked and must not be repacked into
// a denser bitset without a format version bump.
type BitMask []bool

// Count returns the number of set elements.
func (m BitMask) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

// Chunk pairs a boolean mask with one typed scalar value. Chunks are
// value types; once formed they are never mutated.
type Chunk struct {
	Mask  BitMask
	Value Scalar
}

// EncodedSize returns the number of bytes the chunk occupies on disk.
func (c Chunk) EncodedSize() int64 {
	return chunkHeaderSize + int64(len(c.Mask)) + int64(c.Value.Kind().Width())
}

// EncodeChunk writes one (mask, value) record to w:
//
//	[length u64][tag u8][pad 7B][mask len×1B][value width(tag)B]
//
// It returns the total bytes written, 16 + len(mask) + width on success.
// A partially written chunk is not rolled back; the caller decides what
// to do with the stream.
func EncodeChunk(w io.Writer, mask BitMask, value Scalar) (int64, error) {
	tag, err := TagOf(value.Kind())
	if err != nil {
		return 0, err
	}

	var hdr [chunkHeaderSize]byte
	binary.LittleEndian.PutUint64(hdr[0:8], uint64(len(mask)))
	hdr[8] = byte(tag)
	// hdr[9:16] stays zero.

	var total int64
	n, err := w.Write(hdr[:])
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("writing chunk header: %w", err)
	}

	if len(mask) > 0 {
		buf := make([]byte, len(mask))
		for i, b := range mask {
			if b {
				buf[i] = 1
			}
		}
		n, err = w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("writing mask: %w", err)
		}
	}

	n, err = w.Write(value.Bytes())
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("writing value: %w", err)
	}
	return total, nil
}

// DecodeChunk reads one chunk from r. The dtype tag is resolved through
// the registry; an unknown tag fails with ErrUnknownTag. Any nonzero mask
// byte decodes as true. A short read mid-chunk aborts the whole decode.
func DecodeChunk(r io.Reader) (Chunk, error) {
	var hdr [chunkHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.EOF {
			return Chunk{}, io.EOF
		}
		return Chunk{}, fmt.Errorf("reading chunk header: %w", err)
	}

	length := binary.LittleEndian.Uint64(hdr[0:8])
	kind, err := KindOf(TypeTag(hdr[8]))
	if err != nil {
		return Chunk{}, err
	}
	if length > math.MaxInt {
		return Chunk{}, fmt.Errorf("mask length %d overflows addressable memory", length)
	}

	mask := make(BitMask, length)
	if length > 0 {
		buf := make([]byte, length)
		if _, err := io.ReadFull(r, buf); err != nil {
			return Chunk{}, fmt.Errorf("reading mask (%d elements): %w", length, err)
		}
		for i, b := range buf {
			mask[i] = b != 0
		}
	}

	vbuf := make([]byte, kind.Width())
	if _, err := io.ReadFull(r, vbuf); err != nil {
		return Chunk{}, fmt.Errorf("reading %s value: %w", kind, err)
	}
	return Chunk{Mask: mask, Value: decodeScalar(kind, vbuf)}, nil
}

// DecodeChunkAs reads one chunk and additionally fails with
// ErrTypeMismatch when the decoded kind differs from the expected one.
// No reinterpretation is attempted.
func DecodeChunkAs(r io.Reader, kind ScalarKind) (Chunk, error) {
	if !kind.Valid() {
		return Chunk{}, fmt.Errorf("%w: kind %d", ErrUnsupportedKind, kind)
	}
	c, err := DecodeChunk(r)
	if err != nil {
		return Chunk{}, err
	}
	if c.Value.Kind() != kind {
		return Chunk{}, fmt.Errorf("%w: decoded %s, expected %s", ErrTypeMismatch, c.Value.Kind(), kind)
	}
	return c, nil
}
