package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"extfrac/src/calc"
	"extfrac/src/numeric"
)

func newCmdEval(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [tokens...]",
		Short: "Evaluate a reverse Polish expression and print the stack",
		Long: `Evaluate a reverse Polish expression. With no arguments the expression is
read from standard input. The final stack is printed bottom first.`,
		Example: `  fraccalc eval 1/2 1/3 +
  fraccalc eval 355/113 7 limit
  echo '2 -3 ^ p' | fraccalc eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, args)
		},
	}
}

func (a *app) eval(cmd *cobra.Command, args []string) error {
	m := calc.NewMachine(
		calc.WithLogger(a.logger.With().Str("module", "calc").Logger()),
		calc.WithOutput(cmd.OutOrStdout()),
		calc.WithMaxDenominator(numeric.Int128From64(a.config.MaxDen)),
	)

	var err error
	if len(args) > 0 {
		err = m.EvalString(cmd.Context(), strings.Join(args, " "))
	} else {
		err = m.EvalReader(cmd.Context(), cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	for _, f := range m.Stack().Values() {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
