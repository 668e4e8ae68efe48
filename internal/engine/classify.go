package engine

import (
	"strings"

	"github.com/fwaudit/fwaudit/internal/model"
)

// classify reduces one parameter's candidates plus its expected value into a
// terminal outcome. Rules are evaluated in priority order: command failure,
// unusable extraction rule, no value, then the list or single comparison.
func classify(spec model.ParameterSpec, exec CommandExecutionResult) model.ParameterOutcome {
	outcome := model.ParameterOutcome{
		Name:         spec.Name,
		Description:  spec.Description,
		QueryCommand: spec.QueryCommand,
		Expected:     spec.Expected,
	}

	if !exec.Succeeded {
		outcome.Status = model.StatusCommandFailed
		outcome.CurrentValue = model.NoneValue
		outcome.Detail = exec.ErrorDetail
		return outcome
	}

	rule, err := compileRule(spec)
	if err != nil {
		outcome.Status = model.StatusError
		outcome.CurrentValue = model.NoneValue
		outcome.Detail = err.Error()
		return outcome
	}

	candidates := rule.extract(exec.RawOutput)
	if len(candidates) == 0 {
		outcome.Status = model.StatusNoValue
		outcome.CurrentValue = model.NoneValue
		return outcome
	}

	outcome.CurrentValue = strings.Join(candidates, ", ")

	if spec.ResultType == model.ResultList {
		if setsEqual(candidates, spec.Expected) {
			outcome.Status = model.StatusMatch
		} else {
			outcome.Status = model.StatusMismatch
		}
		return outcome
	}

	// Single result type. Multiple matches that agree on one normalized
	// value collapse into that value; disagreeing matches can never
	// satisfy an expectation.
	agreed, ok := collapse(candidates)
	if !ok {
		outcome.Status = model.StatusMismatch
		return outcome
	}

	expected := ""
	if len(spec.Expected) > 0 {
		expected = spec.Expected[0]
	}
	if agreed == normalize(expected) {
		outcome.Status = model.StatusMatch
	} else {
		outcome.Status = model.StatusMismatch
	}
	return outcome
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// collapse returns the single normalized value all candidates agree on, or
// ok=false when they disagree.
func collapse(candidates []string) (string, bool) {
	agreed := normalize(candidates[0])
	for _, c := range candidates[1:] {
		if normalize(c) != agreed {
			return "", false
		}
	}
	return agreed, true
}

// setsEqual compares two value lists as normalized sets: order-independent,
// duplicates irrelevant, case-insensitive.
func setsEqual(got, want []string) bool {
	gotSet := make(map[string]struct{}, len(got))
	for _, v := range got {
		gotSet[normalize(v)] = struct{}{}
	}
	wantSet := make(map[string]struct{}, len(want))
	for _, v := range want {
		wantSet[normalize(v)] = struct{}{}
	}

	if len(gotSet) != len(wantSet) {
		return false
	}
	for v := range gotSet {
		if _, ok := wantSet[v]; !ok {
			return false
		}
	}
	return true
}
