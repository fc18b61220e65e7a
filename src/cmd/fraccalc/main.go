// Command fraccalc is a calculator for exact fractions.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the state the subcommands share once the root command has
// loaded configuration.
type app struct {
	viper  *viper.Viper
	config config
	logger zerolog.Logger
}

func newCmdMain() *cobra.Command {
	a := &app{viper: viper.New(), logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "fraccalc",
		Short:         "Exact fraction calculator",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}

	addGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newCmdEval(a),
		newCmdApprox(a),
		newCmdParse(a),
	)
	for _, sub := range cmd.Commands() {
		// flags come before values
		sub.Flags().SetInterspersed(false)
	}
	return cmd
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String(flagConfig, "", "Config file (yaml, toml or json)")
	flags.String(flagLogLevel, "warn", "Log level: trace, debug, info, warn, error or disabled")
	flags.String(flagLogFormat, "text", "Log format: text or json")
	flags.Int64(flagMaxDen, 0, "Approximate every value in eval to this denominator; 0 disables")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newCmdMain()
	cmd.SetArgs(separateValues(cmd, args))
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

var errorColor = color.New(color.FgRed)

func printError(w io.Writer, err error) {
	errorColor.Fprintf(w, "Error: %v\n", err)
}
