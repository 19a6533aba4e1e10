package stream

import (
	"math/rand"
	"testing"

	"github.com/qcsr-io/qcsr/pkg/codec"
)

var testKinds = []codec.ScalarKind{
	codec.KindBool, codec.KindChar,
	codec.KindUint8, codec.KindUint16, codec.KindUint32, codec.KindUint64,
	codec.KindInt8, codec.KindInt16, codec.KindInt32, codec.KindInt64,
	codec.KindFloat32, codec.KindFloat64,
	codec.KindComplex64, codec.KindComplex128,
}

// makeChunks builds n chunks spanning all scalar kinds with mask lengths
// uniformly drawn from [0, 300].
func makeChunks(t *testing.T, rng *rand.Rand, n int) []codec.Chunk {
	t.Helper()
	chunks := make([]codec.Chunk, n)
	for i := range chunks {
		kind := testKinds[i%len(testKinds)]
		mask := make(codec.BitMask, rng.Intn(301))
		for j := range mask {
			mask[j] = rng.Intn(2) == 1
		}
		chunks[i] = codec.Chunk{Mask: mask, Value: makeScalar(rng, kind)}
	}
	return chunks
}

func makeScalar(rng *rand.Rand, kind codec.ScalarKind) codec.Scalar {
	switch kind {
	case codec.KindBool:
		return codec.Bool(rng.Intn(2) == 1)
	case codec.KindChar:
		return codec.Char(byte(rng.Intn(256)))
	case codec.KindUint8:
		return codec.Uint8(uint8(rng.Intn(256)))
	case codec.KindUint16:
		return codec.Uint16(uint16(rng.Intn(1 << 16)))
	case codec.KindUint32:
		return codec.Uint32(rng.Uint32())
	case codec.KindUint64:
		return codec.Uint64(rng.Uint64())
	case codec.KindInt8:
		return codec.Int8(int8(rng.Intn(256) - 128))
	case codec.KindInt16:
		return codec.Int16(int16(rng.Intn(1<<16) - 1<<15))
	case codec.KindInt32:
		return codec.Int32(int32(rng.Uint32()))
	case codec.KindInt64:
		return codec.Int64(int64(rng.Uint64()))
	case codec.KindFloat32:
		return codec.Float32(rng.Float32())
	case codec.KindFloat64:
		return codec.Float64(rng.NormFloat64())
	case codec.KindComplex64:
		return codec.Complex64(complex(rng.Float32(), rng.Float32()))
	default:
		return codec.Complex128(complex(rng.NormFloat64(), rng.NormFloat64()))
	}
}

func chunksEqual(a, b codec.Chunk) bool {
	if a.Value != b.Value || len(a.Mask) != len(b.Mask) {
		return false
	}
	for i := range a.Mask {
		if a.Mask[i] != b.Mask[i] {
			return false
		}
	}
	return true
}
