package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fwaudit/fwaudit/internal/model"
)

func TestGroupByCommand(t *testing.T) {
	t.Parallel()

	t.Run("groups specs sharing a command in first-seen order", func(t *testing.T) {
		t.Parallel()

		specs := []model.ParameterSpec{
			{Name: "a", QueryCommand: "show system info"},
			{Name: "b", QueryCommand: "show ntp"},
			{Name: "c", QueryCommand: "show system info"},
			{Name: "d", QueryCommand: "show ntp"},
			{Name: "e", QueryCommand: "show clock"},
		}

		groups := GroupByCommand(specs)

		require.Len(t, groups, 3)
		require.Equal(t, "show system info", groups[0].Command)
		require.Equal(t, "show ntp", groups[1].Command)
		require.Equal(t, "show clock", groups[2].Command)

		require.Len(t, groups[0].Specs, 2)
		require.Equal(t, "a", groups[0].Specs[0].Name)
		require.Equal(t, "c", groups[0].Specs[1].Name)
	})

	t.Run("command identity is byte-for-byte", func(t *testing.T) {
		t.Parallel()

		specs := []model.ParameterSpec{
			{Name: "a", QueryCommand: "show system info"},
			{Name: "b", QueryCommand: "show system info "},
			{Name: "c", QueryCommand: "Show system info"},
		}

		groups := GroupByCommand(specs)
		require.Len(t, groups, 3)
	})

	t.Run("empty spec list yields zero groups", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, GroupByCommand(nil))
		require.Empty(t, GroupByCommand([]model.ParameterSpec{}))
	})
}
