package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when the input stream ends before an answer
// was given.
var ErrNoInput = errors.New("no input available")

// Prompter asks the user for values.
type Prompter interface {
	// Prompt asks for a line of text. An empty answer returns def when
	// def is non-empty and asks again otherwise.
	Prompt(label, def string) (string, error)

	// PromptSecret asks for a value without echoing it. When confirm is
	// true the value must be entered twice; on mismatch the user is
	// told and asked again.
	PromptSecret(label string, confirm bool) (string, error)
}

// Injected for tests, mirroring how the terminal is probed in production.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// Terminal is a Prompter reading from a terminal or any line-oriented
// stream. Secrets are read without echo when the input is a terminal.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// NewTerminal creates a Prompter on stdin, writing prompts to out.
func NewTerminal(out io.Writer) *Terminal {
	return NewTerminalFrom(os.Stdin, int(os.Stdin.Fd()), out)
}

// NewTerminalFrom creates a Prompter reading lines from in. fd is the
// file descriptor used for masked input; pass -1 when in is not a file.
func NewTerminalFrom(in io.Reader, fd int, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

// Prompt implements Prompter.
func (t *Terminal) Prompt(label, def string) (string, error) {
	display := label + ": "
	if def != "" {
		display = fmt.Sprintf("%s [%s]: ", label, def)
	}

	for {
		fmt.Fprint(t.out, display)
		line, err := t.readLine()
		if err != nil {
			return "", err
		}
		value := strings.TrimSpace(line)
		if value != "" {
			return value, nil
		}
		if def != "" {
			return def, nil
		}
	}
}

// PromptSecret implements Prompter.
func (t *Terminal) PromptSecret(label string, confirm bool) (string, error) {
	for {
		value, err := t.readSecret(label + ": ")
		if err != nil {
			return "", err
		}
		if value == "" {
			continue
		}
		if !confirm {
			return value, nil
		}

		again, err := t.readSecret("Repeat for confirmation: ")
		if err != nil {
			return "", err
		}
		if value == again {
			return value, nil
		}
		fmt.Fprintln(t.out, "Error: The two entered values do not match.")
	}
}

// readSecret prints display and reads one secret. Masked input is only
// possible on a terminal; piped input falls back to a plain line read.
func (t *Terminal) readSecret(display string) (string, error) {
	fmt.Fprint(t.out, display)
	if t.fd >= 0 && isTerminal(t.fd) {
		b, err := readPassword(t.fd)
		// The terminal swallowed the user's newline.
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return string(b), nil
	}
	return t.readLine()
}

// readLine returns the next line without its line ending. A final line
// without a newline is still returned; ErrNoInput means nothing was left.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
