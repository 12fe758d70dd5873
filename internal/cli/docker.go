package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/bb/internal/model"
	"github.com/shinji-kodama/bb/internal/site"
)

// dockerFlags holds the flag values for the docker command.
type dockerFlags struct {
	// depth is written by both --shallow and --deep. pflag sets flags in
	// command-line order, so the switch given last decides.
	depth model.CheckoutDepth

	// rev is the revision to check out (--rev/-r).
	rev string
}

// depthSwitch is the pflag.Value behind --shallow and --deep. Both
// switches share one target; each selects its own depth when set.
type depthSwitch struct {
	target *model.CheckoutDepth
	depth  model.CheckoutDepth
}

// String implements pflag.Value. It reports whether this switch is the
// one currently selected.
func (s *depthSwitch) String() string {
	if s.target == nil {
		return "false"
	}
	return strconv.FormatBool(*s.target == s.depth)
}

// Set implements pflag.Value. "--shallow" alone arrives as "true";
// "--shallow=false" selects the opposite depth.
func (s *depthSwitch) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	switch {
	case on:
		*s.target = s.depth
	case s.depth.IsShallow():
		*s.target = model.DepthDeep
	default:
		*s.target = model.DepthShallow
	}
	return nil
}

// Type implements pflag.Value. "bool" keeps the value placeholder out of
// the help output.
func (s *depthSwitch) Type() string {
	return "bool"
}

func (a *app) newDockerCommand() *cobra.Command {
	flags := &dockerFlags{depth: model.DepthDeep}

	cmd := &cobra.Command{
		Use:   "docker [--shallow|--deep] [--rev REV] SRC [DEST]",
		Short: "Create and maintain a site that runs in a docker container",
		Long: `Creates and maintains a site that runs in a docker container.

This will clone the repository at SRC into the folder DEST. If DEST
is not provided this will automatically use the last path component
of SRC and create that folder. DEST becomes the repository home for
the rest of the command.

--shallow and --deep may both be given; the last one wins.

Examples:
  bb docker https://git.example.com/acme/erp-site
  bb docker --shallow -r 16.0 https://git.example.com/acme/erp-site sites/acme`,

		// SRC is required, DEST is optional.
		Args: usageArgs(cobra.RangeArgs(1, 2)),

		RunE: func(cmd *cobra.Command, args []string) error {
			// A nil dest tells the planner to derive one from SRC; an
			// explicit empty DEST is kept as given.
			var dest *string
			if len(args) == 2 {
				dest = &args[1]
			}
			return a.runDocker(cmd.OutOrStdout(), args[0], dest, flags)
		},
	}

	// Both switches write the same depth. NoOptDefVal lets them be used
	// without a value, like plain boolean flags.
	cmd.Flags().Var(&depthSwitch{target: &flags.depth, depth: model.DepthShallow}, "shallow", "Makes a checkout shallow")
	cmd.Flags().Var(&depthSwitch{target: &flags.depth, depth: model.DepthDeep}, "deep", "Makes a checkout deep (default)")
	cmd.Flags().Lookup("shallow").NoOptDefVal = "true"
	cmd.Flags().Lookup("deep").NoOptDefVal = "true"

	cmd.Flags().StringVarP(&flags.rev, "rev", "r", site.DefaultRevision, "Clone a specific revision instead of HEAD")

	return cmd
}

// runDocker announces the clone and makes the destination the
// repository home for the remainder of the invocation.
func (a *app) runDocker(out io.Writer, src string, dest *string, flags *dockerFlags) error {
	plan, err := site.NewClonePlan(src, dest, flags.depth, flags.rev)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to plan clone", err)
	}

	plan.Announce(out)

	// Later steps of this invocation operate on the cloned site.
	a.builder.Home = plan.Dest
	a.builder.Logf("Repository home is now %s (%s checkout)", plan.Dest, plan.Depth)
	return nil
}
