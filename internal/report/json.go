package report

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/fwaudit/fwaudit/internal/model"
)

type jsonResult struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	QueryCommand string `json:"query_command"`
	Expected     string `json:"expected_value"`
	Current      string `json:"current_value"`
	Status       string `json:"status"`
	Detail       string `json:"detail,omitempty"`
}

type jsonSummary struct {
	Total         int `json:"total"`
	Match         int `json:"match"`
	Mismatch      int `json:"mismatch"`
	NoValue       int `json:"no_value"`
	CommandFailed int `json:"command_failed"`
	Error         int `json:"error"`
}

type jsonReport struct {
	RunID       string       `json:"run_id"`
	Host        string       `json:"host"`
	Baseline    string       `json:"baseline,omitempty"`
	GeneratedAt string       `json:"generated_at"`
	Duration    float64      `json:"duration_seconds"`
	Summary     jsonSummary  `json:"summary"`
	Results     []jsonResult `json:"results"`
}

// WriteJSON renders the report as an indented JSON document.
func WriteJSON(w io.Writer, r *model.RunReport) error {
	doc := jsonReport{
		RunID:       r.RunID,
		Host:        r.Host,
		Baseline:    r.Baseline,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
		Duration:    r.Duration.Seconds(),
		Summary: jsonSummary{
			Total:         r.Summary.Total,
			Match:         r.Summary.Match,
			Mismatch:      r.Summary.Mismatch,
			NoValue:       r.Summary.NoValue,
			CommandFailed: r.Summary.CommandFailed,
			Error:         r.Summary.Error,
		},
		Results: make([]jsonResult, len(r.Results)),
	}

	for i, o := range r.Results {
		doc.Results[i] = jsonResult{
			Name:         o.Name,
			Description:  o.Description,
			QueryCommand: o.QueryCommand,
			Expected:     strings.Join(o.Expected, ", "),
			Current:      o.CurrentValue,
			Status:       string(o.Status),
			Detail:       o.Detail,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
