package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrub(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "show system info", "show system info"},
		{"color codes removed", "\x1b[32mmode: enabled\x1b[0m", "mode: enabled"},
		{"cursor codes removed", "\x1b[2Jmode: enabled", "mode: enabled"},
		{"carriage returns removed", "mode: enabled\r\nuptime: 1d\r\n", "mode: enabled\nuptime: 1d\n"},
		{"bell and shift chars removed", "mode:\x07 enabled\x0e\x0f", "mode: enabled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, scrub(tc.in))
		})
	}
}

func TestIsPromptLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want bool
	}{
		{"admin@fw01>", true},
		{"admin@fw01> ", true},
		{"admin@fw01#", true},
		{"user$", true},
		{"(active)> ", true},
		{"\x1b[1madmin@fw01>\x1b[0m", true},
		{"mode: enabled", false},
		{"", false},
		{"   ", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, isPromptLine(tc.line), "line %q", tc.line)
	}
}

func TestWantsMore(t *testing.T) {
	t.Parallel()

	require.True(t, wantsMore("some output\n--More--"))
	require.True(t, wantsMore("some output\n-- More --"))
	require.True(t, wantsMore("lines\n(more)"))
	require.False(t, wantsMore("no pager here"))
}

func TestCleanOutput(t *testing.T) {
	t.Parallel()

	t.Run("strips echo prompt and noise", func(t *testing.T) {
		t.Parallel()

		raw := "show system info\r\n" +
			"hostname: fw01\r\n" +
			"mode: \x1b[32menabled\x1b[0m\r\n" +
			"--More--\r\n" +
			"uptime: 12d\r\n" +
			"admin@fw01> "

		got := cleanOutput(raw, "show system info")
		require.Equal(t, "hostname: fw01\nmode: enabled\nuptime: 12d", got)
	})

	t.Run("empty raw output", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", cleanOutput("", "show x"))
	})

	t.Run("output without echo is kept whole", func(t *testing.T) {
		t.Parallel()

		got := cleanOutput("mode: enabled\nadmin@fw01>", "show mode")
		require.Equal(t, "mode: enabled", got)
	})
}
