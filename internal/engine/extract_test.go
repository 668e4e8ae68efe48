package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fwaudit/fwaudit/internal/model"
)

func TestCompileRule(t *testing.T) {
	t.Parallel()

	t.Run("defaults capture group to one", func(t *testing.T) {
		t.Parallel()

		rule, err := compileRule(model.ParameterSpec{Name: "p", Pattern: `mode:\s*(\w+)`})
		require.NoError(t, err)
		require.Equal(t, 1, rule.group)
	})

	t.Run("rejects a pattern that does not compile", func(t *testing.T) {
		t.Parallel()

		_, err := compileRule(model.ParameterSpec{Name: "p", Pattern: `mode: ([`})
		require.Error(t, err)
	})

	t.Run("rejects a capture group the pattern cannot satisfy", func(t *testing.T) {
		t.Parallel()

		_, err := compileRule(model.ParameterSpec{Name: "p", Pattern: `mode:\s*(\w+)`, CaptureGroup: 2})
		require.Error(t, err)
		require.Contains(t, err.Error(), "out of range")
	})

	t.Run("rejects a pattern with no capture group", func(t *testing.T) {
		t.Parallel()

		_, err := compileRule(model.ParameterSpec{Name: "p", Pattern: `mode:\s*\w+`})
		require.Error(t, err)
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		spec model.ParameterSpec
		raw  string
		want []string
	}{
		{
			name: "single match",
			spec: model.ParameterSpec{Pattern: `mode:\s*(\w+)`},
			raw:  "hostname: fw01\nmode: enabled\nuptime: 12d",
			want: []string{"enabled"},
		},
		{
			name: "matching is case-insensitive",
			spec: model.ParameterSpec{Pattern: `MODE:\s*(\w+)`},
			raw:  "mode: enabled",
			want: []string{"enabled"},
		},
		{
			name: "multiple matches in order of appearance",
			spec: model.ParameterSpec{Pattern: `state:\s*(\w+)`},
			raw:  "eth1 state: up\neth2 state: down\neth3 state: up",
			want: []string{"up", "down", "up"},
		},
		{
			name: "second capture group",
			spec: model.ParameterSpec{Pattern: `(\w+) servers:\s*(\S+)`, CaptureGroup: 2},
			raw:  "ntp servers: 10.0.0.1",
			want: []string{"10.0.0.1"},
		},
		{
			name: "separator splits trims and drops empties",
			spec: model.ParameterSpec{Pattern: `dns:\s*(.+)$`, Separator: ","},
			raw:  "dns: 10.0.0.53 , 10.0.1.53,, ",
			want: []string{"10.0.0.53", "10.0.1.53"},
		},
		{
			name: "no match yields empty list",
			spec: model.ParameterSpec{Pattern: `mode:\s*(\w+)`},
			raw:  "nothing relevant here",
			want: nil,
		},
		{
			name: "empty output yields empty list",
			spec: model.ParameterSpec{Pattern: `mode:\s*(\w+)`},
			raw:  "",
			want: nil,
		},
		{
			name: "captured values are trimmed",
			spec: model.ParameterSpec{Pattern: `timeout: (.+)$`},
			raw:  "timeout:  60  ",
			want: []string{"60"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rule, err := compileRule(tc.spec)
			require.NoError(t, err)
			require.Equal(t, tc.want, rule.extract(tc.raw))
		})
	}
}
