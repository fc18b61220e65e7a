package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"extfrac/src/numeric"
)

func newCmdParse(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <value>...",
		Short:   "Print the canonical form, kind and float value of each argument",
		Example: "  fraccalc parse 6/8 0.1 -inf",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, arg := range args {
				f, err := numeric.Parse(arg)
				if err != nil {
					return err
				}
				a.logger.Debug().Str("input", arg).Stringer("value", f).Msg("Parsed")
				v, exact := f.Float64()
				approx := "~"
				if exact {
					approx = "="
				}
				fmt.Fprintf(tw, "%s\t%s\t%s %v\n", f, kindOf(f), approx, v)
			}
			return tw.Flush()
		},
	}
}

func kindOf(f numeric.Fraction) string {
	switch {
	case f.IsNaN():
		return "nan"
	case f.IsInf():
		return "infinite"
	case f.IsInt():
		return "integer"
	}
	return "fraction"
}
