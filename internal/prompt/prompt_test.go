package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTerminal returns a Terminal fed with the given input. fd is -1
// so secrets are read as plain lines.
func newTestTerminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return NewTerminalFrom(strings.NewReader(input), -1, &out), &out
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		def     string
		want    string
		display string
	}{
		{name: "plain answer", input: "alice\n", want: "alice", display: "Username: "},
		{name: "answer is trimmed", input: "  alice \r\n", want: "alice", display: "Username: "},
		{name: "last line without newline", input: "alice", want: "alice", display: "Username: "},
		{name: "empty answer asks again", input: "\n\nbob\n", want: "bob", display: "Username: Username: Username: "},
		{name: "empty answer takes default", input: "\n", def: "odoo", want: "odoo", display: "Username [odoo]: "},
		{name: "answer overrides default", input: "flectra\n", def: "odoo", want: "flectra", display: "Username [odoo]: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, out := newTestTerminal(tt.input)
			got, err := term.Prompt("Username", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.display, out.String())
		})
	}
}

func TestPrompt_NoInput(t *testing.T) {
	term, _ := newTestTerminal("\n")
	_, err := term.Prompt("Username", "")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPromptSecret(t *testing.T) {
	t.Run("without confirmation", func(t *testing.T) {
		term, out := newTestTerminal("s3cret\n")
		got, err := term.PromptSecret("Password", false)
		require.NoError(t, err)
		assert.Equal(t, "s3cret", got)
		assert.Equal(t, "Password: ", out.String())
	})

	t.Run("confirmed", func(t *testing.T) {
		term, out := newTestTerminal("s3cret\ns3cret\n")
		got, err := term.PromptSecret("Password", true)
		require.NoError(t, err)
		assert.Equal(t, "s3cret", got)
		assert.Equal(t, "Password: Repeat for confirmation: ", out.String())
	})

	t.Run("mismatch asks again", func(t *testing.T) {
		term, out := newTestTerminal("one\ntwo\nthree\nthree\n")
		got, err := term.PromptSecret("Password", true)
		require.NoError(t, err)
		assert.Equal(t, "three", got)
		assert.Contains(t, out.String(), "Error: The two entered values do not match.\n")
	})

	t.Run("spaces are kept", func(t *testing.T) {
		term, _ := newTestTerminal(" pass word \n")
		got, err := term.PromptSecret("Password", false)
		require.NoError(t, err)
		assert.Equal(t, " pass word ", got)
	})

	t.Run("input ends during confirmation", func(t *testing.T) {
		term, _ := newTestTerminal("s3cret\n")
		_, err := term.PromptSecret("Password", true)
		assert.ErrorIs(t, err, ErrNoInput)
	})
}

// TestPromptSecret_Terminal swaps the terminal hooks to simulate masked
// input on a real tty.
func TestPromptSecret_Terminal(t *testing.T) {
	origIsTerminal, origReadPassword := isTerminal, readPassword
	t.Cleanup(func() {
		isTerminal = origIsTerminal
		readPassword = origReadPassword
	})

	answers := []string{"hunter2", "hunter2"}
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) {
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}

	var out bytes.Buffer
	term := NewTerminalFrom(strings.NewReader(""), 0, &out)
	got, err := term.PromptSecret("Password", true)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
	assert.Equal(t, "Password: \nRepeat for confirmation: \n", out.String())
}

func TestPromptSecret_TerminalError(t *testing.T) {
	origIsTerminal, origReadPassword := isTerminal, readPassword
	t.Cleanup(func() {
		isTerminal = origIsTerminal
		readPassword = origReadPassword
	})

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }

	var out bytes.Buffer
	term := NewTerminalFrom(strings.NewReader(""), 0, &out)
	_, err := term.PromptSecret("Password", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
}
