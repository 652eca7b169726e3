package format

import (
	"github.com/pkg/errors"
)

// OverflowPolicy decides how an IndentTable answers for depths it does not hold.
type OverflowPolicy int

const (
	// ClampDepth reuses the deepest available indentation for anything nested
	// further than the table's maximum depth.
	ClampDepth OverflowPolicy = iota
	// ErrorOnOverflow reports ErrDepthExceeded instead of clamping.
	ErrorOnOverflow
)

// String returns the configuration name of the policy.
func (p OverflowPolicy) String() string {
	switch p {
	case ClampDepth:
		return "clamp"
	case ErrorOnOverflow:
		return "error"
	default:
		return "unknown"
	}
}

// ParseOverflowPolicy converts a configuration name into an OverflowPolicy.
// The empty string maps to ClampDepth.
func ParseOverflowPolicy(name string) (OverflowPolicy, error) {
	switch name {
	case "", "clamp":
		return ClampDepth, nil
	case "error":
		return ErrorOnOverflow, nil
	default:
		return ClampDepth, errors.Errorf("unknown depth overflow policy: %q", name)
	}
}

// BuildIndentTable returns maxDepth+1 indentation strings. Entry 0 is a single
// newline and every following entry appends one unit to its predecessor.
func BuildIndentTable(unit string, maxDepth int) []string {
	if maxDepth < 0 {
		maxDepth = 0
	}

	levels := make([]string, maxDepth+1)
	levels[0] = "\n"
	for i := 1; i <= maxDepth; i++ {
		levels[i] = levels[i-1] + unit
	}

	return levels
}

// IndentTable is the immutable, precomputed set of line prefixes consulted by
// every walker.
type IndentTable struct {
	levels []string
	policy OverflowPolicy
}

// NewIndentTable builds a table for the given unit and maximum depth.
func NewIndentTable(unit string, maxDepth int, policy OverflowPolicy) *IndentTable {
	return &IndentTable{
		levels: BuildIndentTable(unit, maxDepth),
		policy: policy,
	}
}

// MaxDepth is the deepest level held by the table.
func (t *IndentTable) MaxDepth() int {
	return len(t.levels) - 1
}

// At returns the newline-prefixed indentation for depth.
//
// Negative depths only arise from malformed input and always resolve to entry 0.
// Depths past MaxDepth either clamp or fail with ErrDepthExceeded, depending on
// the table's policy.
func (t *IndentTable) At(depth int) (string, error) {
	if depth < 0 {
		return t.levels[0], nil
	}

	if depth > t.MaxDepth() {
		if t.policy == ErrorOnOverflow {
			return "", errors.Wrapf(ErrDepthExceeded, "depth %d is deeper than %d", depth, t.MaxDepth())
		}
		return t.levels[t.MaxDepth()], nil
	}

	return t.levels[depth], nil
}
