package codec

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// HeaderSize is the fixed size of the file prologue in bytes.
	HeaderSize = 32

	// Version is the highest format version this codec understands.
	Version = 1
)

// Magic is the fixed 8-byte constant identifying a QCSR stream.
var Magic = [8]byte{'Q', 'C', 'S', 'R', 0, 0, 0, 0}

// EncodeHeader writes the 32-byte file prologue: the magic constant, a
// u32 version, a reserved u32 and 16 reserved bytes, all little-endian.
// Reserved regions are written as zero. It returns the number of bytes
// written, always HeaderSize on success.
func EncodeHeader(w io.Writer) (int, error) {
	var buf [HeaderSize]byte
	copy(buf[0:8], Magic[:])
	binary.LittleEndian.PutUint32(buf[8:12], Version)
	// buf[12:32] stays zero: reserved u32 + 16 reserved bytes.
	n, err := w.Write(buf[:])
	if err != nil {
		return n, fmt.Errorf("writing header: %w", err)
	}
	return n, nil
}

// DecodeHeader reads the 32-byte file prologue and returns the magic and
// version fields. The reserved regions are consumed but not interpreted,
// so anything a newer writer placed there is tolerated. DecodeHeader does
// not validate what it reads; see CheckHeader.
func DecodeHeader(r io.Reader) (magic [8]byte, version uint32, err error) {
	var buf [HeaderSize]byte
	if _, err = io.ReadFull(r, buf[:]); err != nil {
		return magic, 0, fmt.Errorf("reading header: %w", err)
	}
	copy(magic[:], buf[0:8])
	version = binary.LittleEndian.Uint32(buf[8:12])
	return magic, version, nil
}

// CheckHeader validates a decoded header against an expected scalar kind.
// It fails with ErrBadMagic when the magic differs from the constant, with
// ErrVersion when the version exceeds Version, and with ErrTypeMismatch
// when the dtype tag is not the tag of the expected kind.
func CheckHeader(kind ScalarKind, magic [8]byte, version uint32, dtype TypeTag) error {
	if magic != Magic {
		return fmt.Errorf("%w: % x", ErrBadMagic, magic[:])
	}
	if version > Version {
		return fmt.Errorf("%w: %d (max %d)", ErrVersion, version, Version)
	}
	want, err := TagOf(kind)
	if err != nil {
		return err
	}
	if dtype != want {
		return fmt.Errorf("%w: tag %d, expected %d (%s)", ErrTypeMismatch, dtype, want, kind)
	}
	return nil
}
