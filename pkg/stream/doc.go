// Package stream provides incremental chunk-level access to QCSR streams.
//
// A port wraps a byte stream and handles the 32-byte file header exactly
// once at open: a write port emits it, a read port consumes it. After
// that, chunks are read or written one at a time without buffering the
// whole file.
//
// Ownership follows the constructor. OpenReadPort and OpenWritePort open
// a file themselves and close it when the port is closed; NewReadPort and
// NewWritePort borrow a caller-supplied stream and never close it. Close
// is idempotent either way.
//
// Ports are not safe for concurrent use. A given port belongs to one
// goroutine at a time; the underlying stream must have a single reader or
// a single writer.
//
// Typical whole-file usage goes through Save and Load:
//
//	err := stream.Save("state.qcsr", chunks)
//	chunks, err := stream.Load("state.qcsr")
//
// Incremental usage opens a port directly:
//
//	err := stream.WithReadPort("state.qcsr", func(p *stream.ReadPort) error {
//	    sc := stream.NewScanner(p)
//	    for sc.Next() {
//	        process(sc.Chunk())
//	    }
//	    return sc.Err()
//	})
package stream
