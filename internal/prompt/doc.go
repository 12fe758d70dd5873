// Package prompt provides the interactive input used by bb commands:
// line prompts with defaults, masked secrets with confirmation, and an
// external editor session for commit messages.
//
// Commands depend on the Prompter and Editor interfaces so tests can
// substitute canned input for a real terminal.
package prompt
