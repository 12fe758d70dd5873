package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/bb/internal/model"
)

// commitMarker separates the user's message from the generated file hint
// in the editor.
const commitMarker = "# Files to be committed:"

// mailFlags holds the flag values for the mail command.
type mailFlags struct {
	messages []string // --message/-m, one line each
}

func (a *app) newMailCommand() *cobra.Command {
	flags := &mailFlags{}

	cmd := &cobra.Command{
		Use:   "mail [--message TEXT]... [FILES...]",
		Short: "Commit outstanding changes",
		Long: `Commits outstanding changes.

Commit changes to the given files into the repository. You will need to
"repo push" to push up your changes to other repositories.

If a list of files is omitted, all changes reported by "repo status"
will be committed. Without --message your editor ($VISUAL, $EDITOR)
is opened to write the message.`,

		// Any number of files; none means all changes.
		Args: usageArgs(cobra.ArbitraryArgs),

		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMail(cmd.Context(), cmd.OutOrStdout(), args, flags)
		},
	}

	// StringArray rather than StringSlice: commas in a message are text.
	cmd.Flags().StringArrayVarP(&flags.messages, "message", "m", nil,
		"The commit message. If provided multiple times each argument becomes a new line")

	return cmd
}

// runMail builds the commit message from --message values or an editor
// session and announces the commit. Aborting in the editor is not an
// error: the command prints why and exits successfully.
func (a *app) runMail(ctx context.Context, out io.Writer, files []string, flags *mailFlags) error {
	var msg string
	if len(flags.messages) > 0 {
		msg = strings.Join(flags.messages, "\n")
	} else {
		if a.deps.Editor == nil {
			return model.NewCLIError(model.ExitInputError, "no editor available; use --message")
		}
		// The editor starts with the commented file list below two empty
		// lines for the message.
		edited, ok, err := a.deps.Editor.Edit(ctx, commitHint(files))
		if err != nil {
			return model.WrapCLIError(model.ExitInputError, "editor session failed", err)
		}
		if !ok {
			fmt.Fprintln(out, "Aborted!")
			return nil
		}
		msg = StripCommitHint(edited)
		if msg == "" {
			fmt.Fprintln(out, "Aborted! Empty commit message")
			return nil
		}
	}

	fmt.Fprintf(out, "Files to be committed: %s\n", formatFileList(files))
	fmt.Fprintln(out, "Commit message:\n"+msg)
	return nil
}

// commitHint builds the editor seed: two empty lines for the message,
// then the commented list of files.
func commitHint(files []string) string {
	lines := []string{"", "", commitMarker, "#"}
	for _, f := range files {
		lines = append(lines, "#   U "+f)
	}
	return strings.Join(lines, "\n")
}

// StripCommitHint returns the part of an edited message before the file
// hint, with trailing whitespace removed.
func StripCommitHint(edited string) string {
	before, _, _ := strings.Cut(edited, commitMarker)
	return strings.TrimRightFunc(before, unicode.IsSpace)
}

// formatFileList renders the files line of the announcement.
func formatFileList(files []string) string {
	if len(files) == 0 {
		return "(all changes)"
	}
	return strings.Join(files, ", ")
}
