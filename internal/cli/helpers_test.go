package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shinji-kodama/bb/internal/prompt"
)

// fakePrompter answers Prompt from answers and PromptSecret from secrets,
// recording every label it was asked.
type fakePrompter struct {
	answers []string
	secrets []string
	asked   []string
}

func (p *fakePrompter) Prompt(label, def string) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.answers) == 0 {
		return "", errors.New("unexpected prompt " + label)
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *fakePrompter) PromptSecret(label string, confirm bool) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.secrets) == 0 {
		return "", errors.New("unexpected secret prompt " + label)
	}
	s := p.secrets[0]
	p.secrets = p.secrets[1:]
	return s, nil
}

// fakeEditor returns a canned edit result and records the seed text.
type fakeEditor struct {
	result string
	ok     bool
	err    error

	called bool
	seed   string
}

func (e *fakeEditor) Edit(_ context.Context, text string) (string, bool, error) {
	e.called = true
	e.seed = text
	return e.result, e.ok, e.err
}

// fakeSettings records how the support command drives the handler.
type fakeSettings struct {
	home    string
	reset   bool
	shown   bool
	applied []string

	showErr  error
	applyErr error
}

func (s *fakeSettings) ShowSettings(w io.Writer) error {
	s.shown = true
	_, _ = io.WriteString(w, "erp: odoo\n")
	return s.showErr
}

func (s *fakeSettings) ApplySettings(selector string) error {
	s.applied = append(s.applied, selector)
	return s.applyErr
}

func (s *fakeSettings) factory() SettingsFactory {
	return func(home string, reset bool, _ prompt.Prompter) (SettingsHandler, error) {
		s.home = home
		s.reset = reset
		return s, nil
	}
}

// result captures one in-process bb run.
type result struct {
	app    *app
	stdout string
	stderr string
	err    error
}

// runBB executes bb with args against deps, capturing both streams.
func runBB(t *testing.T, deps Deps, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	deps.Stderr = &stderr
	a := newApp(deps)
	root := a.rootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := Run(root, args)
	return result{app: a, stdout: stdout.String(), stderr: stderr.String(), err: err}
}
