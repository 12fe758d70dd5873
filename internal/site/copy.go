package site

import "fmt"

// CopyOp is a single announced file copy.
type CopyOp struct {
	Src string
	Dst string
}

// String formats the op as printed by "bb create".
func (op CopyOp) String() string {
	return fmt.Sprintf("Copy from %s -> %s", op.Src, op.Dst)
}

// PlanCopy pairs every source with the destination, preserving the
// order in which the sources were given.
func PlanCopy(srcs []string, dst string) []CopyOp {
	ops := make([]CopyOp, 0, len(srcs))
	for _, src := range srcs {
		ops = append(ops, CopyOp{Src: src, Dst: dst})
	}
	return ops
}
