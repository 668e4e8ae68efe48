package engine

import "github.com/fwaudit/fwaudit/internal/model"

// CommandGroup is the set of parameters sharing one query command. Groups
// exist only for the duration of a run.
type CommandGroup struct {
	Command string
	Specs   []model.ParameterSpec
}

// GroupByCommand buckets specs by their query command so each unique command
// executes once per run. Group order is first-seen order. Command identity is
// byte-for-byte: no trimming or normalization, since rewriting the string
// would silently change which commands reach the device.
func GroupByCommand(specs []model.ParameterSpec) []CommandGroup {
	var groups []CommandGroup
	index := make(map[string]int, len(specs))

	for _, spec := range specs {
		i, ok := index[spec.QueryCommand]
		if !ok {
			i = len(groups)
			index[spec.QueryCommand] = i
			groups = append(groups, CommandGroup{Command: spec.QueryCommand})
		}
		groups[i].Specs = append(groups[i].Specs, spec)
	}

	return groups
}
