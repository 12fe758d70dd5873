// Package site plans the site operations announced by the create and
// docker commands.
//
// bb never copies a file or clones a repository. This package turns the
// command arguments into plans (CopyOp, ClonePlan) whose only output is
// the text the CLI prints.
package site
