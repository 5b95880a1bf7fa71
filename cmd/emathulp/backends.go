package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-emath/hwy"
	"github.com/ajroetker/go-emath/hwy/contrib/math"
)

func newBackendsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "Show the detected CPU level and the available backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			cur := math.CurrentBackend()
			fmt.Fprintf(out, "detected: %s\n", hwy.DetectedLevel())
			fmt.Fprintf(out, "level:    %s\n", hwy.CurrentLevel())
			fmt.Fprintf(out, "selected: %s\n", cur.Name)
			for _, b := range math.Backends() {
				mark := " "
				if b.Name == cur.Name {
					mark = "*"
				}
				if b.Level == hwy.DispatchScalar {
					fmt.Fprintf(out, "%s %s\n", mark, b.Name)
					continue
				}
				fmt.Fprintf(out, "%s %-8s %d-byte vectors\n", mark, b.Name, b.Level.Width())
			}
			opts.logger.Debug("backends", "archsimd", hwy.HasArchSIMD(), "no_simd", hwy.NoSimdEnv())
			return nil
		},
	}
}
