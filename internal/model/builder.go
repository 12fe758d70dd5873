package model

import (
	"fmt"
	"io"
)

// Builder is the shared context of one bb invocation. It carries the
// repository home, the key/value configuration set through --config or
// by subcommands, and the verbosity flag.
//
// Subcommands receive the Builder by pointer and may mutate it: docker
// reassigns Home, remote stores credentials in Config.
type Builder struct {
	// Home is the absolute path of the repository folder.
	Home string

	// Config holds configuration overrides. Insertion order is irrelevant.
	Config map[string]string

	// Verbose enables config echo and diagnostic logging on Log.
	Verbose bool

	// Log receives verbose output. It is the process stderr in production
	// and a buffer in tests. A nil Log discards everything.
	Log io.Writer
}

// NewBuilder creates a Builder rooted at home with an empty configuration.
// The caller is responsible for passing an absolute path.
func NewBuilder(home string, verbose bool, log io.Writer) *Builder {
	return &Builder{
		Home:    home,
		Config:  make(map[string]string),
		Verbose: verbose,
		Log:     log,
	}
}

// SetConfig stores a configuration value, echoing the assignment to Log
// when verbose mode is on.
func (b *Builder) SetConfig(key, value string) {
	if b.Config == nil {
		b.Config = make(map[string]string)
	}
	b.Config[key] = value
	if b.Verbose && b.Log != nil {
		fmt.Fprintf(b.Log, "  config[%s] = %s\n", key, value)
	}
}

// Logf prints a diagnostic line to Log only when verbose mode is enabled.
func (b *Builder) Logf(format string, args ...interface{}) {
	if b.Verbose && b.Log != nil {
		fmt.Fprintf(b.Log, "[verbose] "+format+"\n", args...)
	}
}

// String returns a short description used in verbose output.
func (b *Builder) String() string {
	return fmt.Sprintf("<Builder %q>", b.Home)
}
