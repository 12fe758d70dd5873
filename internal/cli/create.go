package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/bb/internal/site"
)

// createFlags holds the flag values for the create command.
type createFlags struct {
	force bool // --force: overwrite managed files (announced only)
}

func (a *app) newCreateCommand() *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create [--force] SRC... DST",
		Short: "Create or update a site",
		Long: `Copies one or multiple files to a new location. This copies all
files from SRC to DST.

Examples:
  bb create addons/sale.py addons/stock.py site/addons
  bb create --force odoo.conf site`,

		// At least one SRC and the DST.
		Args: usageArgs(cobra.MinimumNArgs(2)),

		RunE: func(cmd *cobra.Command, args []string) error {
			// The last argument is the destination, all others are sources.
			last := len(args) - 1
			return a.runCreate(cmd.OutOrStdout(), args[:last], args[last], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "Forcibly copy over an existing managed file")

	return cmd
}

// runCreate announces one copy per source, in the order given. Nothing
// is copied, so --force only shows up in verbose output.
func (a *app) runCreate(out io.Writer, srcs []string, dst string, flags *createFlags) error {
	a.builder.Logf("Creating site files in %s (force: %t)", dst, flags.force)
	for _, op := range site.PlanCopy(srcs, dst) {
		fmt.Fprintln(out, op)
	}
	return nil
}
