package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/bb/internal/model"
)

// maskChar replaces every password character in the stored config.
const maskChar = "*"

// remoteFlags holds the flag values for the remote command.
type remoteFlags struct {
	username string // --username: the developer's shown name
	email    string // --email: the developer's address
	password string // --password: login password, prompted masked when absent
}

func (a *app) newRemoteCommand() *cobra.Command {
	flags := &remoteFlags{}

	cmd := &cobra.Command{
		Use:   "remote [--username USER] [--email EMAIL]",
		Short: "Set the user credentials",
		Long: `Sets the user credentials.

This will override the current user config. Values that are not given
as flags are prompted for; the password is read without echo and must
be entered twice.`,

		// remote takes flags only.
		Args: usageArgs(cobra.NoArgs),

		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRemote(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.username, "username", "", "The developer's shown username")
	cmd.Flags().StringVar(&flags.email, "email", "", "The developer's email address")
	cmd.Flags().StringVar(&flags.password, "password", "", "The login password")

	return cmd
}

// runRemote collects the credentials, prompting for whatever was not
// given as a flag, and stores them in the Builder config. The password
// is stored only as a placeholder of the same length.
func (a *app) runRemote(out io.Writer, flags *remoteFlags) error {
	username := flags.username
	email := flags.email
	password := flags.password

	var err error
	if username == "" {
		if username, err = a.ask("Username"); err != nil {
			return err
		}
	}
	if email == "" {
		if email, err = a.ask("E-Mail"); err != nil {
			return err
		}
	}
	if password == "" {
		if a.deps.Prompter == nil {
			return errNoPrompter
		}
		password, err = a.deps.Prompter.PromptSecret("Password", true)
		if err != nil {
			return model.WrapCLIError(model.ExitInputError, "failed to read password", err)
		}
	}

	// SetConfig echoes in verbose mode, which is why the password is
	// masked before it reaches the Builder.
	a.builder.SetConfig("username", username)
	a.builder.SetConfig("email", email)
	a.builder.SetConfig("password", MaskSecret(password))
	fmt.Fprintln(out, "Changed credentials.")
	return nil
}

// ask prompts for a required value.
func (a *app) ask(label string) (string, error) {
	if a.deps.Prompter == nil {
		return "", errNoPrompter
	}
	value, err := a.deps.Prompter.Prompt(label, "")
	if err != nil {
		return "", model.WrapCLIError(model.ExitInputError,
			fmt.Sprintf("failed to read %s", strings.ToLower(label)), err)
	}
	return value, nil
}

// MaskSecret returns one mask character per character of secret, so the
// stored value reveals the length but never the content.
func MaskSecret(secret string) string {
	return strings.Repeat(maskChar, len([]rune(secret)))
}

// errNoPrompter is returned when a value must be prompted for but no
// Prompter was wired.
var errNoPrompter = model.NewCLIError(model.ExitInputError, "interactive input is not available")
