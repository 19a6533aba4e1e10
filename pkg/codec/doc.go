// Package codec implements the QCSR binary chunk format.
//
// QCSR stores an ordered sequence of chunks, each pairing a boolean mask
// of caller-chosen length with one typed scalar value. The format is
// little-endian throughout.
//
// # File Layout
//
// A file is exactly one 32-byte header followed by zero or more chunks,
// consumed until end of stream:
//
//	[magic(8)][version(4)][reserved(4)][reserved(16)]
//	[length(8)][dtype(1)][pad(7)][mask(length)][value(width)]
//	...
//
// Fields:
//   - magic: fixed bytes 51 43 53 52 00 00 00 00 ("QCSR\0\0\0\0")
//   - version: u32, currently 1; readers accept any value <= 1
//   - reserved: always zero on write, ignored on read
//   - length: u64, number of mask elements
//   - dtype: one of 14 type tags identifying the scalar kind
//   - pad: always zero on write, ignored on read; keeps the mask
//     region 8-byte aligned
//   - mask: one byte per element, 0x00 = false, any other value = true
//   - value: the scalar's fixed-width little-endian byte image
//
// The per-chunk overhead is a fixed 16 bytes, so every chunk is
// self-describing and byte-aligned regardless of payload size. The mask
// is stored unpacked, one byte per element; this trades an 8x size
// penalty for stateless streaming.
//
// # Usage
//
// Encoding and decoding single chunks:
//
//	n, err := codec.EncodeChunk(w, mask, codec.Float64(3.14))
//	if err != nil {
//	    return err
//	}
//
//	chunk, err := codec.DecodeChunk(r)
//	if err != nil {
//	    return err
//	}
//
// Callers that know the kind they expect use the typed variant, which
// fails with ErrTypeMismatch instead of handing back a surprise:
//
//	chunk, err := codec.DecodeChunkAs(r, codec.KindFloat64)
//
// For whole files, see the stream package.
package codec
