package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/qcsr-io/qcsr/pkg/codec"
	"github.com/qcsr-io/qcsr/pkg/stream"
)

var genKinds = []codec.ScalarKind{
	codec.KindBool, codec.KindChar,
	codec.KindUint8, codec.KindUint16, codec.KindUint32, codec.KindUint64,
	codec.KindInt8, codec.KindInt16, codec.KindInt32, codec.KindInt64,
	codec.KindFloat32, codec.KindFloat64,
	codec.KindComplex64, codec.KindComplex128,
}

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen <file>",
	Short: "Generate a synthetic container file for testing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("chunks")
		minLen, _ := cmd.Flags().GetInt("min-len")
		maxLen, _ := cmd.Flags().GetInt("max-len")
		seed, _ := cmd.Flags().GetInt64("seed")

		if count < 0 || minLen < 0 || maxLen < minLen {
			return fmt.Errorf("need chunks >= 0 and 0 <= min-len <= max-len")
		}

		rng := rand.New(rand.NewSource(seed))
		err := stream.WithWritePort(args[0], func(p *stream.WritePort) error {
			for i := 0; i < count; i++ {
				mask := make(codec.BitMask, minLen+rng.Intn(maxLen-minLen+1))
				for j := range mask {
					mask[j] = rng.Intn(2) == 1
				}
				value := randomScalar(rng, genKinds[i%len(genKinds)])
				if _, err := p.WriteChunk(codec.Chunk{Mask: mask, Value: value}); err != nil {
					return fmt.Errorf("writing chunk %d: %w", i, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		cmd.Printf("wrote %d chunks to %s\n", count, args[0])
		return nil
	},
}

func randomScalar(rng *rand.Rand, kind codec.ScalarKind) codec.Scalar {
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

func init() {
	genCmd.Flags().Int("chunks", 1024, "Number of chunks to generate")
	genCmd.Flags().Int("min-len", 0, "Minimum mask length")
	genCmd.Flags().Int("max-len", 300, "Maximum mask length")
	genCmd.Flags().Int64("seed", 1, "Random seed")
	rootCmd.AddCommand(genCmd)
}
