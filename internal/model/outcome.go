package model

import "time"

// Status is the terminal compliance verdict for one parameter.
type Status string

const (
	// StatusMatch means the extracted value equals the expected value.
	StatusMatch Status = "match"
	// StatusMismatch means a value was extracted but differs from the
	// expected value, including conflicting multi-match evidence.
	StatusMismatch Status = "mismatch"
	// StatusNoValue means the pattern matched nothing in the output.
	StatusNoValue Status = "no_value"
	// StatusCommandFailed means the query command itself failed, so no
	// extraction was attempted.
	StatusCommandFailed Status = "command_failed"
	// StatusError means the extraction rule is unusable (bad pattern or
	// capture group out of range).
	StatusError Status = "error"
)

// NoneValue is the sentinel reported as the current value when a command
// failed and nothing could be extracted.
const NoneValue = "none"

// ParameterOutcome is the verification result for one ParameterSpec.
// Outcomes are immutable once created.
type ParameterOutcome struct {
	Name         string
	Description  string
	QueryCommand string
	Expected     []string
	// CurrentValue is the comma join of all extracted candidates, or the
	// NoneValue sentinel when the command failed.
	CurrentValue string
	Status       Status
	// Detail carries the transport or pattern failure reason for the
	// command_failed and error statuses.
	Detail string
}

// IsCompliant reports whether the parameter matched its baseline.
func (o ParameterOutcome) IsCompliant() bool {
	return o.Status == StatusMatch
}

// RunSummary aggregates outcome counts for one verification run. It is
// always derived from the outcome list, never stored independently.
type RunSummary struct {
	Total         int
	Match         int
	Mismatch      int
	NoValue       int
	CommandFailed int
	Error         int
}

// Summarize folds an outcome list into counts.
func Summarize(outcomes []ParameterOutcome) RunSummary {
	var s RunSummary
	for _, o := range outcomes {
		s.Total++
		switch o.Status {
		case StatusMatch:
			s.Match++
		case StatusMismatch:
			s.Mismatch++
		case StatusNoValue:
			s.NoValue++
		case StatusCommandFailed:
			s.CommandFailed++
		case StatusError:
			s.Error++
		}
	}
	return s
}

// AllMatch reports whether every parameter is compliant.
func (s RunSummary) AllMatch() bool {
	return s.Total == s.Match
}

// RunReport is the report-ready result set handed to renderers.
type RunReport struct {
	RunID       string
	Host        string
	Baseline    string
	GeneratedAt time.Time
	Duration    time.Duration
	Results     []ParameterOutcome
	Summary     RunSummary
}

// ExitCode maps a run onto the process exit status: 0 when fully
// compliant, 1 when any parameter needs attention.
func (r *RunReport) ExitCode() int {
	if r.Summary.AllMatch() {
		return 0
	}
	return 1
}
