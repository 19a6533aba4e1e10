package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/qcsr-io/qcsr/pkg/stream"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print header fields and aggregate statistics for a container file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		perChunk, _ := cmd.Flags().GetBool("chunks")

		return stream.WithReadPort(args[0], func(p *stream.ReadPort) error {
			cmd.Printf("magic:   % x\n", p.Magic())
			cmd.Printf("version: %d\n", p.Version())

			var chunks, maskElements, setBits int
			kinds := map[string]int{}

			sc := stream.NewScanner(p)
			for sc.Next() {
				c := sc.Chunk()
				if perChunk {
					cmd.Printf("chunk %6d  %-10s  mask=%d set=%d  value=%v\n",
						chunks, c.Value.Kind(), len(c.Mask), c.Mask.Count(), c.Value.Interface())
				}
				chunks++
				maskElements += len(c.Mask)
				setBits += c.Mask.Count()
				kinds[c.Value.Kind().String()]++
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("after %d chunks: %w", chunks, err)
			}

			cmd.Printf("chunks:  %d\n", chunks)
			cmd.Printf("mask:    %d elements, %d set\n", maskElements, setBits)

			names := make([]string, 0, len(kinds))
			for name := range kinds {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				cmd.Printf("  %-10s %d\n", name, kinds[name])
			}
			return nil
		})
	},
}

func init() {
	inspectCmd.Flags().Bool("chunks", false, "Print one line per chunk")
	rootCmd.AddCommand(inspectCmd)
}
