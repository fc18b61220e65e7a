package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"extfrac/src/numeric"
)

// separateValues inserts "--" ahead of the first negative value that follows
// the subcommand name, so -3 or -inf reach the command as arguments instead
// of being read as shorthand flags. Values of flags are left alone.
func separateValues(root *cobra.Command, args []string) []string {
	sets := []*pflag.FlagSet{root.PersistentFlags()}
	inSub := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case takesValue(arg, sets):
			i++
		case !inSub:
			if sub, _, err := root.Find([]string{arg}); err == nil && sub != root {
				sets = []*pflag.FlagSet{sub.LocalFlags(), sub.InheritedFlags()}
				inSub = true
			}
		case isNegativeValue(arg):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// takesValue reports whether arg names a flag that consumes the next
// argument.
func takesValue(arg string, sets []*pflag.FlagSet) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}
	long := strings.HasPrefix(arg, "--")
	name := strings.TrimLeft(arg, "-")
	if !long && len(name) != 1 {
		return false
	}
	for _, fs := range sets {
		var f *pflag.Flag
		if long {
			f = fs.Lookup(name)
		} else {
			f = fs.ShorthandLookup(name)
		}
		if f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}

func isNegativeValue(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := numeric.Parse(arg)
	return err == nil
}
