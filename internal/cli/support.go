package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/bb/internal/baseinfo"
	"github.com/shinji-kodama/bb/internal/model"
)

// supportFlags holds the flag values for the support command.
type supportFlags struct {
	show  bool   // --show/-s: print the current settings
	reset bool   // --reset/-r: start from the default settings
	set   string // --set: selector of settings to apply
}

func (a *app) newSupportCommand() *cobra.Command {
	flags := &supportFlags{}

	cmd := &cobra.Command{
		Use:   "support [--show] [--reset] [--set NAMES]",
		Short: "Maintain the site environment settings",
		Long: `Provides support commands to maintain the environment.

Settings are kept in baseinfo.json inside the repository home.
By default all settings are (re)asked. --set takes a comma separated
list of names, each optionally with a value: name=value,name2=value2.
Pass --set "" to only show or reset.

Examples:
  bb support --show --set ""
  bb support --set erp=flectra,http_port=8070
  bb support --reset`,

		// support takes flags only.
		Args: usageArgs(cobra.NoArgs),

		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSupport(cmd.OutOrStdout(), flags)
		},
	}

	// --set defaults to "all": every known setting is asked again unless
	// the selector is narrowed or emptied.
	cmd.Flags().BoolVarP(&flags.show, "show", "s", false, "Lists actual settings")
	cmd.Flags().BoolVarP(&flags.reset, "reset", "r", false, "Reset local settings")
	cmd.Flags().StringVar(&flags.set, "set", baseinfo.SelectAll,
		"Set local settings; a comma separated list of name or name=value")

	return cmd
}

// runSupport delegates to the settings handler. --set defaults to "all",
// so settings are applied on every run unless --set is explicitly empty.
func (a *app) runSupport(out io.Writer, flags *supportFlags) error {
	if a.deps.Settings == nil {
		return errNoSettings
	}
	// The settings file lives in the resolved repository home.
	handler, err := a.deps.Settings(a.builder.Home, flags.reset, a.deps.Prompter)
	if err != nil {
		return err
	}

	// Show first, so the listing reflects the state before applying.
	if flags.show {
		if err := handler.ShowSettings(out); err != nil {
			return err
		}
	}
	if flags.set != "" {
		a.builder.Logf("Applying settings %q", flags.set)
		if err := handler.ApplySettings(flags.set); err != nil {
			return err
		}
	}
	return nil
}

// Compile-time check that the baseinfo handler satisfies SettingsHandler.
var _ SettingsHandler = (*baseinfo.Handler)(nil)

// errNoSettings is returned when no settings factory was wired.
var errNoSettings = model.NewCLIError(model.ExitSettingsError, "no settings handler configured")
