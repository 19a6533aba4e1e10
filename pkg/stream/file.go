package stream

import "github.com/qcsr-io/qcsr/pkg/codec"

// Save writes chunks to the file at path, header first, replacing
// whatever was there.
func Save(path string, chunks []codec.Chunk) error {
	return WithWritePort(path, func(p *WritePort) error {
		_, err := p.WriteChunks(chunks)
		return err
	})
}

// Load reads every chunk from the file at path, in file order.
func Load(path string) ([]codec.Chunk, error) {
	var chunks []codec.Chunk
	err := WithReadPort(path, func(p *ReadPort) error {
		var rerr error
		chunks, rerr = p.ReadAll()
		return rerr
	})
	if err != nil {
		return nil, err
	}
	return chunks, nil
}
