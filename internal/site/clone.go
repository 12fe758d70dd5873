package site

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/bb/internal/model"
)

// DefaultRevision is checked out when --rev is not given.
const DefaultRevision = "HEAD"

// ClonePlan describes the clone of a site repository into a local folder
// that a docker container would later run from.
type ClonePlan struct {
	// Source is the repository URL or path exactly as given.
	Source string

	// Dest is the absolute destination folder.
	Dest string

	// Depth selects shallow or deep history.
	Depth model.CheckoutDepth

	// Revision is the revision to check out after cloning.
	Revision string
}

// DeriveDest returns the folder a clone of src lands in when no
// destination is given: the last "/"-separated segment of src, or "."
// when src ends with a separator.
//
// Unlike path.Base, a trailing slash is significant: "repos/erp/"
// yields ".".
func DeriveDest(src string) string {
	tail := src[strings.LastIndex(src, "/")+1:]
	if tail == "" {
		return "."
	}
	return tail
}

// NewClonePlan builds a plan for src. A nil dest means the destination
// was omitted and is derived from src; a non-nil dest is used as given,
// even when empty. The destination is made absolute against the current
// working directory. An empty revision falls back to DefaultRevision.
func NewClonePlan(src string, dest *string, depth model.CheckoutDepth, rev string) (*ClonePlan, error) {
	target := DeriveDest(src)
	if dest != nil {
		target = *dest
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination %q: %w", target, err)
	}

	if !depth.IsValid() {
		depth = model.DepthDeep
	}
	if rev == "" {
		rev = DefaultRevision
	}

	return &ClonePlan{
		Source:   src,
		Dest:     abs,
		Depth:    depth,
		Revision: rev,
	}, nil
}

// Announce writes the lines "bb docker" prints for this plan.
func (p *ClonePlan) Announce(w io.Writer) {
	fmt.Fprintf(w, "Cloning repo %s to %s\n", p.Source, p.Dest)
	if p.Depth.IsShallow() {
		fmt.Fprintln(w, "Making shallow checkout")
	}
	fmt.Fprintf(w, "Checking out revision %s\n", p.Revision)
}
