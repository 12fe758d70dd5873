package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Editor runs an interactive edit session.
type Editor interface {
	// Edit lets the user change text. ok is false when the session was
	// left without saving a change.
	Edit(ctx context.Context, text string) (result string, ok bool, err error)
}

// ExternalEditor edits text in the user's editor through a temporary file.
type ExternalEditor struct {
	// Command is the editor command line, e.g. "vim" or "code --wait".
	// The temporary file path is appended as the last argument.
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExternalEditor picks the editor from $VISUAL, then $EDITOR, then the
// platform default, attached to the process standard streams.
func NewExternalEditor() *ExternalEditor {
	return &ExternalEditor{
		Command: DefaultEditorCommand(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// DefaultEditorCommand resolves the editor command from the environment.
func DefaultEditorCommand() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// Edit implements Editor.
func (e *ExternalEditor) Edit(ctx context.Context, text string) (string, bool, error) {
	fields := strings.Fields(e.Command)
	if len(fields) == 0 {
		return "", false, fmt.Errorf("no editor configured")
	}

	f, err := os.CreateTemp("", "bb-commit-*.txt")
	if err != nil {
		return "", false, fmt.Errorf("failed to create temporary file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return "", false, fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", false, fmt.Errorf("failed to write temporary file: %w", err)
	}

	args := append(fields[1:], path)
	// #nosec G204 -- the editor command comes from the user's own environment
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor %q failed: %w", fields[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read edited file: %w", err)
	}
	result := string(data)
	if result == text {
		return "", false, nil
	}
	return result, true, nil
}
