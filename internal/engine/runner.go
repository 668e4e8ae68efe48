// Package engine implements the parameter verification pipeline: group
// specs by query command, execute each unique command once over the device
// session, extract candidate values from the shared output, classify each
// parameter's compliance, and aggregate the outcomes in baseline order.
//
// The engine is pure apart from Session calls. It performs no logging and
// no I/O of its own; every per-parameter failure degrades to a status value
// so callers always receive one outcome per declared parameter.
package engine

import (
	"context"
	"fmt"

	"github.com/fwaudit/fwaudit/internal/model"
)

// Run verifies every spec against the device session and returns one outcome
// per spec, in the order the specs were given, plus the summary counts.
// Commands execute sequentially in first-seen spec order, each unique command
// exactly once. Run only errors on unusable arguments; transport and
// extraction failures surface as outcome statuses instead.
func Run(ctx context.Context, specs []model.ParameterSpec, session Session) ([]model.ParameterOutcome, model.RunSummary, error) {
	if session == nil {
		return nil, model.RunSummary{}, fmt.Errorf("engine: session is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	groups := GroupByCommand(specs)
	executions := executeGroups(ctx, session, groups)

	outcomes := make([]model.ParameterOutcome, 0, len(specs))
	for _, spec := range specs {
		outcomes = append(outcomes, classify(spec, executions[spec.QueryCommand]))
	}

	return outcomes, model.Summarize(outcomes), nil
}
