package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fwaudit/fwaudit/internal/model"
)

func sampleReport() *model.RunReport {
	outcomes := []model.ParameterOutcome{
		{
			Name:         "operational-mode",
			Description:  "Device must run in normal mode",
			QueryCommand: "show system info",
			Expected:     []string{"normal"},
			CurrentValue: "normal",
			Status:       model.StatusMatch,
		},
		{
			Name:         "ntp-synched",
			QueryCommand: "show ntp",
			Expected:     []string{"yes"},
			CurrentValue: "no",
			Status:       model.StatusMismatch,
		},
		{
			Name:         "ha-state",
			QueryCommand: "show high-availability state",
			Expected:     []string{"active"},
			CurrentValue: model.NoneValue,
			Status:       model.StatusCommandFailed,
			Detail:       "timed out",
		},
	}
	return New("10.0.0.1", "edge-baseline", outcomes, time.Now().Add(-2*time.Second))
}

func TestNew(t *testing.T) {
	t.Parallel()

	r := sampleReport()

	require.NotEmpty(t, r.RunID)
	require.Equal(t, "10.0.0.1", r.Host)
	require.Equal(t, "edge-baseline", r.Baseline)
	require.False(t, r.GeneratedAt.IsZero())
	require.Positive(t, r.Duration)
	require.Equal(t, 3, r.Summary.Total)
	require.Equal(t, 1, r.Summary.Match)
	require.Equal(t, 1, r.Summary.Mismatch)
	require.Equal(t, 1, r.Summary.CommandFailed)
	require.Equal(t, 1, r.ExitCode())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "10.0.0.1", doc["host"])

	results, ok := doc["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 3)

	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "operational-mode", first["name"])
	require.Equal(t, "match", first["status"])

	summary, ok := doc["summary"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(3), summary["total"])
	require.Equal(t, float64(1), summary["command_failed"])
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per outcome")
	require.Equal(t, "name", rows[0][0])
	require.Equal(t, "ntp-synched", rows[2][0])
	require.Equal(t, "MISMATCH", rows[2][2])
	require.Equal(t, "timed out", rows[3][6])
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sampleReport()))

	html := buf.String()
	require.Contains(t, html, "Parameter verification - 10.0.0.1")
	require.Contains(t, html, `<tr class="mismatch">`)
	require.Contains(t, html, "operational-mode")
	require.Contains(t, html, "show high-availability state")
}

func TestWriteTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WriteTerminal(&buf, sampleReport())

	out := buf.String()
	require.Contains(t, out, "operational-mode")
	require.Contains(t, out, "MATCH")
	require.Contains(t, out, "Baseline deviations found")
	require.Contains(t, out, strings.ToUpper("command_failed"))
}
