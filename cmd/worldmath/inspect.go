package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-worldmath/pkg/double3"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <vector>",
		Short: "Print measurements and diagnostics of a vector",
		Long: `Print measurements and diagnostics of a vector.

A vector starting with a minus sign must follow "--", or be written in the
"X:-1 Y:2 Z:3" form:

  worldmath inspect -- -3,4,0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVector(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			row := func(name string, value any) {
				fmt.Fprintf(w, "%s\t%v\n", name, value)
			}
			row("vector", v)
			row("length", formatScalar(v.Length()))
			row("length_squared", formatScalar(v.LengthSquared()))
			row("normalized", double3.Normalize(v))
			row("min_value", formatScalar(v.MinValue()))
			row("max_value", formatScalar(v.MaxValue()))
			row("sum", formatScalar(v.SumValues()))
			row("average", formatScalar(v.AverageArithmetic()))
			row("is_normalized", v.IsNormalized())
			row("is_zero", v.IsZero())
			row("is_any_zero", v.IsAnyZero())
			row("is_nan", v.IsNaN())
			row("is_infinity", v.IsInfinity())
			return w.Flush()
		},
	}
}
