package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"extfrac/src/numeric"
)

func newCmdApprox(a *app) *cobra.Command {
	var showError bool

	cmd := &cobra.Command{
		Use:     "approx <value> <max-den>",
		Short:   "Find the closest fraction with a bounded denominator",
		Example: "  fraccalc approx 3.141592653589793 1000",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := numeric.Parse(args[0])
			if err != nil {
				return err
			}
			max, err := numeric.Int128FromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid max denominator %q: %w", args[1], err)
			}

			out, err := x.LimitDenominator(max)
			if err != nil {
				return err
			}
			a.logger.Debug().Stringer("value", x).Stringer("max", max).Stringer("result", out).Msg("Approximated")

			if !showError {
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			diff, err := x.TrySub(out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", out, diff)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showError, "error", false, "Also print the exact approximation error, value - result")
	return cmd
}
