// Package report renders verification results. Renderers consume the
// finished outcome list and summary only; they never reach back into the
// engine.
package report

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fwaudit/fwaudit/internal/model"
)

// New assembles the report document for one finished run.
func New(host, baseline string, outcomes []model.ParameterOutcome, started time.Time) *model.RunReport {
	return &model.RunReport{
		RunID:       uuid.NewString(),
		Host:        host,
		Baseline:    baseline,
		GeneratedAt: time.Now(),
		Duration:    time.Since(started),
		Results:     outcomes,
		Summary:     model.Summarize(outcomes),
	}
}

// statusLabel renders a status the way operators read it in reports.
func statusLabel(s model.Status) string {
	return strings.ToUpper(string(s))
}
