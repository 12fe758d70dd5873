package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shinji-kodama/bb/internal/model"
)

// configPairSep joins KEY and VALUE of a folded "--config KEY VALUE"
// occurrence. NUL cannot appear in a real command-line argument, so keys
// and values may contain any other character, "=" included.
const configPairSep = "\x00"

type configPair struct {
	Key   string
	Value string
}

// configPairs is the pflag.Value behind --config. It accumulates pairs in
// the order they appear on the command line.
type configPairs struct {
	pairs []configPair
}

// String implements pflag.Value.
func (c *configPairs) String() string {
	parts := make([]string, 0, len(c.pairs))
	for _, p := range c.pairs {
		parts = append(parts, p.Key+"="+p.Value)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Set implements pflag.Value. It accepts a folded pair and, as a
// shorthand, "KEY=VALUE".
func (c *configPairs) Set(s string) error {
	key, value, ok := strings.Cut(s, configPairSep)
	if !ok {
		key, value, ok = strings.Cut(s, "=")
	}
	if !ok {
		return fmt.Errorf("expected KEY VALUE, got %q", s)
	}
	c.pairs = append(c.pairs, configPair{Key: key, Value: value})
	return nil
}

// Type implements pflag.Value; it is shown as the value placeholder in help.
func (c *configPairs) Type() string {
	return "KEY VALUE"
}

// expandConfigArgs folds every "--config KEY VALUE" triple into a single
// "--config=KEY<sep>VALUE" argument. Arguments after "--" are left alone,
// and so is a "--config" word that is the value of another flag, as in
// "bb mail -m --config".
//
// Which flags take a value depends on the subcommand, so the scan follows
// subcommand names the same way cobra will resolve them ("-r" is a value
// flag for docker but a switch for support).
func expandConfigArgs(root *cobra.Command, args []string) ([]string, error) {
	cmd := root
	takesValue := valueFlags(root, cmd)

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			// Everything after the terminator is positional.
			return append(out, args[i:]...), nil

		case arg == "--"+flagConfig:
			if i+2 >= len(args) {
				return nil, model.NewCLIError(model.ExitUsageError,
					"flag --config needs two arguments: KEY VALUE")
			}
			out = append(out, "--"+flagConfig+"="+args[i+1]+configPairSep+args[i+2])
			i += 2

		case takesValue[arg] && i+1 < len(args):
			// The next word belongs to this flag, whatever it looks like.
			out = append(out, arg, args[i+1])
			i++

		default:
			if sub := findSubcommand(cmd, arg); sub != nil {
				cmd = sub
				takesValue = valueFlags(root, cmd)
			}
			out = append(out, arg)
		}
	}
	return out, nil
}

// valueFlags returns the spellings ("--name", "-n") of every flag that
// consumes the following argument when cmd is the active command: the
// root's persistent flags plus cmd's own flags. Switches (bool flags and
// anything else with a NoOptDefVal) are left out, and so is --config,
// which expandConfigArgs handles itself.
func valueFlags(root, cmd *cobra.Command) map[string]bool {
	names := make(map[string]bool)
	collect := func(f *pflag.Flag) {
		if f.NoOptDefVal != "" || f.Name == flagConfig {
			return
		}
		names["--"+f.Name] = true
		if f.Shorthand != "" {
			names["-"+f.Shorthand] = true
		}
	}
	root.PersistentFlags().VisitAll(collect)
	if cmd != root {
		cmd.Flags().VisitAll(collect)
	}
	return names
}

// findSubcommand returns the direct subcommand of cmd named (or aliased)
// word, or nil when word is a flag or a positional argument.
func findSubcommand(cmd *cobra.Command, word string) *cobra.Command {
	if strings.HasPrefix(word, "-") {
		return nil
	}
	for _, sub := range cmd.Commands() {
		if sub.Name() == word || sub.HasAlias(word) {
			return sub
		}
	}
	return nil
}
