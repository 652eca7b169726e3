package format

import "strings"

// DepthAction describes how a fragment moves the walker's depth relative to the
// moment the fragment is emitted.
type DepthAction int

const (
	NoChange DepthAction = iota
	// EmitThenIncrement emits at the current depth and nests what follows.
	EmitThenIncrement
	// IncrementThenEmit nests first and emits at the new depth.
	IncrementThenEmit
	// DecrementThenEmit un-nests first and emits at the shallower depth.
	DecrementThenEmit
	// EmitThenDecrement emits at the current depth and un-nests what follows.
	EmitThenDecrement
)

// Before is the depth delta applied before emitting.
func (a DepthAction) Before() int {
	switch a {
	case IncrementThenEmit:
		return 1
	case DecrementThenEmit:
		return -1
	default:
		return 0
	}
}

// After is the depth delta applied after emitting.
func (a DepthAction) After() int {
	switch a {
	case EmitThenIncrement:
		return 1
	case EmitThenDecrement:
		return -1
	default:
		return 0
	}
}

// emitter accumulates walker output. Indented fragments are prefixed with the
// table entry for the current depth, raw fragments are appended verbatim.
type emitter struct {
	table *IndentTable
	out   strings.Builder
}

func newEmitter(table *IndentTable, size int) *emitter {
	e := &emitter{table: table}
	e.out.Grow(size)
	return e
}

func (e *emitter) indented(depth int, fragment string) error {
	prefix, err := e.table.At(depth)
	if err != nil {
		return err
	}

	e.out.WriteString(prefix)
	e.out.WriteString(fragment)
	return nil
}

func (e *emitter) raw(fragment string) {
	e.out.WriteString(fragment)
}

func (e *emitter) String() string {
	return e.out.String()
}
