package model

import (
	"fmt"
	"strings"
)

// CheckoutDepth selects how much history a docker site clone would fetch.
// Neither strategy is performed; the depth only changes what bb announces.
type CheckoutDepth string

const (
	// DepthDeep clones the full history. This is the default.
	DepthDeep CheckoutDepth = "deep"

	// DepthShallow clones only the requested revision.
	DepthShallow CheckoutDepth = "shallow"
)

// String returns the string representation of CheckoutDepth.
func (d CheckoutDepth) String() string {
	return string(d)
}

// IsValid checks whether the CheckoutDepth value is one of the
// predefined depths.
func (d CheckoutDepth) IsValid() bool {
	switch d {
	case DepthDeep, DepthShallow:
		return true
	default:
		return false
	}
}

// IsShallow reports whether the checkout is shallow.
func (d CheckoutDepth) IsShallow() bool {
	return d == DepthShallow
}

// ParseCheckoutDepth converts a string to a CheckoutDepth.
// Returns an error if the string does not match any valid depth.
func ParseCheckoutDepth(s string) (CheckoutDepth, error) {
	depth := CheckoutDepth(strings.ToLower(s))
	if !depth.IsValid() {
		return "", fmt.Errorf("invalid checkout depth: %q (valid: deep, shallow)", s)
	}
	return depth, nil
}
