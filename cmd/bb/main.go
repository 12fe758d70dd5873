// Package main is the entry point for the bb CLI.
//
// This binary creates and maintains local and remote ERP site
// repositories. It delegates all functionality to the internal/cli
// package, which defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release build.
package main

import (
	"github.com/shinji-kodama/bb/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "1.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package before the root
	// command is built, since cobra captures the version string then.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand(cli.DefaultDeps())
	cli.Execute(rootCmd)
}
