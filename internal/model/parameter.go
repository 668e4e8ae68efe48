package model

import "strings"

// ResultType governs how extracted candidates are compared against the
// expected value.
type ResultType string

const (
	// ResultSingle expects exactly one value on the device.
	ResultSingle ResultType = "single"
	// ResultList expects a set of values, compared order-independently.
	ResultList ResultType = "list"
)

// ParameterSpec is one declared check: which command to run, how to pull the
// current value out of its output, and what the value should be. Specs are
// constructed once by a loader (YAML baseline or catalog) and never mutated
// during a run.
type ParameterSpec struct {
	// Name uniquely identifies the parameter across the baseline.
	Name string

	// Description is free-form operator text, opaque to the engine.
	Description string

	// QueryCommand is the exact command string sent to the device.
	// Command identity is byte-for-byte; two specs share an execution
	// only when their commands are identical.
	QueryCommand string

	// Expected holds the normalized expected value(s). A single-type
	// parameter carries one element; a list-type parameter carries the
	// full expected set.
	Expected []string

	// Pattern is a regular expression with at least one capture group,
	// applied case-insensitively across the command output.
	Pattern string

	// CaptureGroup selects which capture group supplies the value.
	// Loaders default it to 1.
	CaptureGroup int

	// Separator optionally splits a captured value into pieces.
	Separator string

	// ResultType selects single or list comparison semantics.
	ResultType ResultType
}

// ExpectedDisplay renders the expected value(s) for reports.
func (s ParameterSpec) ExpectedDisplay() string {
	return strings.Join(s.Expected, ", ")
}
