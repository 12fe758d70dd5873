// Package cli implements the cobra-based CLI commands for bb.
//
// Each subcommand (create, docker, support, remote, mail) is defined in its
// own file within this package. This file defines the root command that
// parses the global flags and builds the shared model.Builder before any
// subcommand body runs.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shinji-kodama/bb/internal/baseinfo"
	"github.com/shinji-kodama/bb/internal/model"
	"github.com/shinji-kodama/bb/internal/prompt"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the version of the binary.
	Version = "1.0"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Names of the global flags and the sources of the repository home.
const (
	// flagRepoHome is the persistent flag selecting the repository folder.
	// It doubles as the viper key the folder is resolved under.
	flagRepoHome = "repo-home"

	// flagConfig is the persistent, repeatable "--config KEY VALUE" flag.
	flagConfig = "config"

	// envRepoHome supplies the repository folder when --repo-home is absent.
	envRepoHome = "REPO_HOME"

	// defaultRepoHome is used when neither the flag nor the environment
	// variable is set. It is resolved against the working directory.
	defaultRepoHome = ".repo"
)

// SettingsHandler shows and applies the site settings behind "bb support".
// The baseinfo package provides the production implementation.
type SettingsHandler interface {
	// ShowSettings writes the current settings to w.
	ShowSettings(w io.Writer) error

	// ApplySettings sets the settings named by selector ("all" or a
	// comma-separated list of name or name=value) and persists them.
	ApplySettings(selector string) error
}

// SettingsFactory constructs the settings handler for a repository home.
// reset asks for a handler that starts from the default settings.
type SettingsFactory func(home string, reset bool, p prompt.Prompter) (SettingsHandler, error)

// Deps are the collaborators commands use to talk to the user and to
// the settings store. Tests replace them with canned implementations.
type Deps struct {
	// Prompter asks for values that were not given as flags
	// (remote credentials, support settings without a value).
	Prompter prompt.Prompter

	// Editor collects the commit message when mail gets no --message.
	Editor prompt.Editor

	// Settings builds the handler used by support. A nil factory makes
	// support fail with a settings error.
	Settings SettingsFactory

	// Stderr receives verbose output. Defaults to os.Stderr.
	Stderr io.Writer
}

// DefaultDeps wires the terminal, the user's editor, and the baseinfo
// settings file.
func DefaultDeps() Deps {
	return Deps{
		Prompter: prompt.NewTerminal(os.Stdout),
		Editor:   prompt.NewExternalEditor(),
		Settings: func(home string, reset bool, p prompt.Prompter) (SettingsHandler, error) {
			h, err := baseinfo.NewHandler(home, reset, p)
			if err != nil {
				return nil, err
			}
			return h, nil
		},
		Stderr: os.Stderr,
	}
}

// app holds the state of one invocation: parsed global flags and the
// Builder created from them.
type app struct {
	// deps are the injected collaborators, see Deps.
	deps Deps

	// repoHome is the raw --repo-home value. setup resolves the final
	// path through viper, so an unset flag falls back to $REPO_HOME.
	repoHome string

	// config accumulates --config pairs in command-line order.
	config configPairs

	// verbose enables config echo and [verbose] diagnostics on stderr.
	verbose bool

	// builder is nil until the persistent pre-run created it. It stays
	// nil for --version and --help.
	builder *model.Builder
}

// newApp fills in defaults for missing streams.
func newApp(deps Deps) *app {
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	return &app{deps: deps}
}

// NewRootCommand creates and configures the root cobra command with all
// subcommands registered. This is the entry point for the entire CLI.
//
// The root command itself only provides help text and global flags.
// Exactly one subcommand runs per invocation.
func NewRootCommand(deps Deps) *cobra.Command {
	return newApp(deps).rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "bb",
		Short: "Create and maintain local and remote ERP server instances",
		Long: `bb is a command line tool used to create and maintain local and remote
erp server instances.

The supported erp systems are:
  - odoo
  - flectra
  - cubicerp`,

		// SilenceUsage and SilenceErrors leave error output to Execute.
		SilenceUsage:  true,
		SilenceErrors: true,

		// Version is displayed when --version is used. cobra prints it and
		// returns before any pre-run hook, so no Builder is created.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// The Builder is created here, after flag parsing, so --version
		// and --help never produce one.
		PersistentPreRunE: a.setup,

		// Without a subcommand bb prints help; a stray word is a usage error.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return model.NewCLIError(model.ExitUsageError,
					fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath()))
			}
			return cmd.Help()
		},
	}
	// "bb, version 1.0 (commit: ..., built: ...)"
	rootCmd.SetVersionTemplate("{{.Name}}, version {{.Version}}\n")

	// Flag parsing errors of every subcommand are usage errors. Children
	// inherit the function from the root.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsageError, "invalid flag", err)
	})

	// PersistentFlags are inherited by all subcommands, so global options
	// may appear before or after the subcommand name.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.repoHome, flagRepoHome, "",
		"Changes the repository folder `PATH` (default: $"+envRepoHome+" or "+defaultRepoHome+")")
	pf.Var(&a.config, flagConfig, "Overrides a config key/value pair")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enables verbose mode")

	// Register subcommands. Each is defined in its own file and shares
	// the app, and with it the Builder, with the root.
	rootCmd.AddCommand(a.newCreateCommand())
	rootCmd.AddCommand(a.newDockerCommand())
	rootCmd.AddCommand(a.newSupportCommand())
	rootCmd.AddCommand(a.newRemoteCommand())
	rootCmd.AddCommand(a.newMailCommand())

	return rootCmd
}

// setup resolves the repository home and creates the Builder. The home
// comes from --repo-home, then $REPO_HOME, then ".repo", and is made
// absolute. --config pairs are applied in the order they were given.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetDefault(flagRepoHome, defaultRepoHome)
	if err := v.BindEnv(flagRepoHome, envRepoHome); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to bind "+envRepoHome, err)
	}
	if err := v.BindPFlag(flagRepoHome, cmd.Root().PersistentFlags().Lookup(flagRepoHome)); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to bind --"+flagRepoHome, err)
	}

	// The Builder always carries an absolute home.
	home, err := filepath.Abs(v.GetString(flagRepoHome))
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to resolve repository home", err)
	}

	a.builder = model.NewBuilder(home, a.verbose, a.deps.Stderr)

	// Later pairs overwrite earlier ones with the same key.
	for _, p := range a.config.pairs {
		a.builder.SetConfig(p.Key, p.Value)
	}
	a.builder.Logf("Using %s", a.builder)
	return nil
}

// usageArgs wraps a cobra argument validator so that its failures exit
// with the usage error code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return model.WrapCLIError(model.ExitUsageError, "invalid arguments", err)
		}
		return nil
	}
}

// Run executes rootCmd with the given command line (without the program
// name). "--config KEY VALUE" pairs are folded into single flag values
// first, since pflag flags take exactly one value.
func Run(rootCmd *cobra.Command, args []string) error {
	expanded, err := expandConfigArgs(rootCmd, args)
	if err != nil {
		return err
	}
	rootCmd.SetArgs(expanded)
	return rootCmd.Execute()
}

// Execute runs the root command on os.Args and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	err := Run(rootCmd, os.Args[1:])
	if err == nil {
		return
	}

	// CLIError carries its own exit code; errors.As also finds one
	// wrapped by cobra or a subcommand.
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(os.Stderr, cliErr.Message, cliErr.Err)
		if cliErr.Code == model.ExitUsageError {
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
		}
		os.Exit(int(cliErr.Code))
	}

	// Generic error, exit with code 1.
	printError(os.Stderr, err.Error(), nil)
	os.Exit(int(model.ExitGeneralError))
}

// printError writes "Error: <message>[: <cause>]" to w.
func printError(w io.Writer, message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}
