package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fwaudit/fwaudit/internal/model"
)

func okExec(output string) CommandExecutionResult {
	return CommandExecutionResult{RawOutput: output, Succeeded: true}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	singleSpec := func(expected string) model.ParameterSpec {
		return model.ParameterSpec{
			Name:       "mode",
			Pattern:    `mode:\s*(\w+)`,
			Expected:   []string{expected},
			ResultType: model.ResultSingle,
		}
	}

	t.Run("command failure wins over everything", func(t *testing.T) {
		t.Parallel()

		exec := CommandExecutionResult{Succeeded: false, ErrorDetail: "connection reset"}
		outcome := classify(singleSpec("enabled"), exec)

		require.Equal(t, model.StatusCommandFailed, outcome.Status)
		require.Equal(t, model.NoneValue, outcome.CurrentValue)
		require.Equal(t, "connection reset", outcome.Detail)
	})

	t.Run("bad pattern degrades to error", func(t *testing.T) {
		t.Parallel()

		spec := singleSpec("enabled")
		spec.Pattern = `mode: ([`
		outcome := classify(spec, okExec("mode: enabled"))

		require.Equal(t, model.StatusError, outcome.Status)
		require.Equal(t, model.NoneValue, outcome.CurrentValue)
		require.NotEmpty(t, outcome.Detail)
	})

	t.Run("no match degrades to no value", func(t *testing.T) {
		t.Parallel()

		outcome := classify(singleSpec("enabled"), okExec("uptime: 12d"))

		require.Equal(t, model.StatusNoValue, outcome.Status)
		require.Equal(t, model.NoneValue, outcome.CurrentValue)
	})

	t.Run("single value matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		outcome := classify(singleSpec("Enabled"), okExec("mode: ENABLED"))

		require.Equal(t, model.StatusMatch, outcome.Status)
		require.Equal(t, "ENABLED", outcome.CurrentValue)
	})

	t.Run("single value mismatch", func(t *testing.T) {
		t.Parallel()

		outcome := classify(singleSpec("enabled"), okExec("mode: disabled"))

		require.Equal(t, model.StatusMismatch, outcome.Status)
		require.Equal(t, "disabled", outcome.CurrentValue)
	})

	t.Run("agreeing multi-match collapses to one value", func(t *testing.T) {
		t.Parallel()

		spec := model.ParameterSpec{
			Name:       "state",
			Pattern:    `state:\s*(\w+)`,
			Expected:   []string{"up"},
			ResultType: model.ResultSingle,
		}
		outcome := classify(spec, okExec("a state: UP\nb state: up\nc state: Up"))

		require.Equal(t, model.StatusMatch, outcome.Status)
		require.Equal(t, "UP, up, Up", outcome.CurrentValue)
	})

	t.Run("disagreeing multi-match never matches", func(t *testing.T) {
		t.Parallel()

		spec := model.ParameterSpec{
			Name:       "state",
			Pattern:    `state:\s*(\w+)`,
			Expected:   []string{"up"},
			ResultType: model.ResultSingle,
		}
		outcome := classify(spec, okExec("a state: up\nb state: down"))

		require.Equal(t, model.StatusMismatch, outcome.Status)
		require.Equal(t, "up, down", outcome.CurrentValue)
	})

	t.Run("list comparison is order-independent and case-insensitive", func(t *testing.T) {
		t.Parallel()

		spec := model.ParameterSpec{
			Name:       "dns",
			Pattern:    `dns-\w+:\s*(\S+)`,
			Expected:   []string{"a", "b"},
			ResultType: model.ResultList,
		}
		outcome := classify(spec, okExec("dns-primary: b\ndns-secondary: A"))

		require.Equal(t, model.StatusMatch, outcome.Status)
	})

	t.Run("list comparison ignores duplicates", func(t *testing.T) {
		t.Parallel()

		spec := model.ParameterSpec{
			Name:       "dns",
			Pattern:    `dns:\s*(\S+)`,
			Expected:   []string{"a"},
			ResultType: model.ResultList,
		}
		outcome := classify(spec, okExec("dns: a\ndns: A\ndns: a"))

		require.Equal(t, model.StatusMatch, outcome.Status)
	})

	t.Run("list with missing member mismatches", func(t *testing.T) {
		t.Parallel()

		spec := model.ParameterSpec{
			Name:       "dns",
			Pattern:    `dns-\w+:\s*(\S+)`,
			Expected:   []string{"a", "b"},
			ResultType: model.ResultList,
		}
		outcome := classify(spec, okExec("dns-primary: a"))

		require.Equal(t, model.StatusMismatch, outcome.Status)
	})

	t.Run("list with extra member mismatches", func(t *testing.T) {
		t.Parallel()

		spec := model.ParameterSpec{
			Name:       "dns",
			Pattern:    `dns-\w+:\s*(\S+)`,
			Expected:   []string{"a"},
			ResultType: model.ResultList,
		}
		outcome := classify(spec, okExec("dns-primary: a\ndns-backup: c"))

		require.Equal(t, model.StatusMismatch, outcome.Status)
	})

	t.Run("expected comparison trims whitespace", func(t *testing.T) {
		t.Parallel()

		outcome := classify(singleSpec("  enabled  "), okExec("mode: enabled"))

		require.Equal(t, model.StatusMatch, outcome.Status)
	})
}
