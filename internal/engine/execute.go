package engine

import "context"

// Session is the capability the engine needs from the device connection:
// run one command, get its decoded output back, or fail. Interactive remote
// shells are not safely multiplexed, so callers issue one command at a time.
type Session interface {
	Execute(ctx context.Context, command string) (string, error)
}

// CommandExecutionResult is the outcome of running one unique command once.
// It is shared read-only by every parameter in the command's group.
type CommandExecutionResult struct {
	Command   string
	RawOutput string
	Succeeded bool
	// ErrorDetail is set iff Succeeded is false.
	ErrorDetail string
}

// executeGroups runs each group's command exactly once, in group (first-seen)
// order, and returns the results keyed by command string. Transport failures
// are captured per command, never raised: a failed command degrades its
// parameters to command_failed without aborting the rest of the run. Retry
// policy, if any, belongs to the session.
func executeGroups(ctx context.Context, session Session, groups []CommandGroup) map[string]CommandExecutionResult {
	results := make(map[string]CommandExecutionResult, len(groups))

	for _, group := range groups {
		output, err := session.Execute(ctx, group.Command)
		if err != nil {
			results[group.Command] = CommandExecutionResult{
				Command:     group.Command,
				ErrorDetail: err.Error(),
			}
			continue
		}
		results[group.Command] = CommandExecutionResult{
			Command:   group.Command,
			RawOutput: output,
			Succeeded: true,
		}
	}

	return results
}
