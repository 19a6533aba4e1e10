package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/qcsr-io/qcsr/pkg/codec"
	"github.com/qcsr-io/qcsr/pkg/stream"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Stream chunks as JSON lines",
	Long: `Dump writes one JSON object per chunk to stdout, in file order,
for piping into jq and friends. Complex values are emitted as
{"real": r, "imag": i} objects.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withMask, _ := cmd.Flags().GetBool("mask")

		enc := json.NewEncoder(cmd.OutOrStdout())
		return stream.WithReadPort(args[0], func(p *stream.ReadPort) error {
			sc := stream.NewScanner(p)
			for index := 0; sc.Next(); index++ {
				c := sc.Chunk()
				line := map[string]interface{}{
					"index":    index,
					"kind":     c.Value.Kind().String(),
					"mask_len": len(c.Mask),
					"set_bits": c.Mask.Count(),
					"value":    jsonScalar(c.Value),
				}
				if withMask {
					line["mask"] = c.Mask
				}
				if err := enc.Encode(line); err != nil {
					return err
				}
			}
			return sc.Err()
		})
	},
}

// jsonScalar boxes a scalar for JSON output; encoding/json cannot
// represent Go complex values.
func jsonScalar(v codec.Scalar) interface{} {
	switch v.Kind() {
	case codec.KindComplex64:
		c := v.AsComplex64()
		return map[string]float64{"real": float64(real(c)), "imag": float64(imag(c))}
	case codec.KindComplex128:
		c := v.AsComplex128()
		return map[string]float64{"real": real(c), "imag": imag(c)}
	default:
		return v.Interface()
	}
}

func init() {
	dumpCmd.Flags().Bool("mask", false, "Include the full mask in each line")
	rootCmd.AddCommand(dumpCmd)
}
