package report

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/fwaudit/fwaudit/internal/model"
)

// WriteCSV renders the report as CSV with one row per parameter.
func WriteCSV(w io.Writer, r *model.RunReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "description", "status", "current_value", "expected_value", "query_command", "detail"}); err != nil {
		return err
	}

	for _, o := range r.Results {
		row := []string{
			o.Name,
			o.Description,
			statusLabel(o.Status),
			o.CurrentValue,
			strings.Join(o.Expected, ", "),
			o.QueryCommand,
			o.Detail,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
