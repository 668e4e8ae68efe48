package report

import (
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/fwaudit/fwaudit/internal/model"
)

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Parameter verification - {{.Host}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; }
.meta { color: #666; margin-bottom: 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; font-size: 0.9rem; }
th { background: #4472c4; color: #fff; }
tr.match td { background: #c6efce; }
tr.mismatch td, tr.command_failed td { background: #ffc7ce; }
tr.no_value td, tr.error td { background: #ffeb9c; }
.summary { margin-top: 1rem; }
.summary span { margin-right: 1.2rem; }
</style>
</head>
<body>
<h1>Parameter verification - {{.Host}}</h1>
<div class="meta">run {{.RunID}} · generated {{.GeneratedAt}}{{if .Baseline}} · baseline {{.Baseline}}{{end}}</div>
<table>
<tr><th>Parameter</th><th>Description</th><th>Status</th><th>Current</th><th>Expected</th><th>Query command</th></tr>
{{range .Results}}<tr class="{{.Class}}">
<td>{{.Name}}</td><td>{{.Description}}</td><td>{{.Status}}</td><td>{{.Current}}</td><td>{{.Expected}}</td><td><code>{{.QueryCommand}}</code></td>
</tr>
{{end}}</table>
<div class="summary">
<span>Total: {{.Summary.Total}}</span>
<span>Match: {{.Summary.Match}}</span>
<span>Mismatch: {{.Summary.Mismatch}}</span>
<span>No value: {{.Summary.NoValue}}</span>
<span>Command failed: {{.Summary.CommandFailed}}</span>
<span>Error: {{.Summary.Error}}</span>
</div>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Parse(htmlTemplate))

type htmlRow struct {
	Name         string
	Description  string
	Status       string
	Class        string
	Current      string
	Expected     string
	QueryCommand string
}

type htmlDoc struct {
	RunID       string
	Host        string
	Baseline    string
	GeneratedAt string
	Summary     model.RunSummary
	Results     []htmlRow
}

// WriteHTML renders the report as a standalone HTML document.
func WriteHTML(w io.Writer, r *model.RunReport) error {
	doc := htmlDoc{
		RunID:       r.RunID,
		Host:        r.Host,
		Baseline:    r.Baseline,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
		Summary:     r.Summary,
		Results:     make([]htmlRow, len(r.Results)),
	}

	for i, o := range r.Results {
		doc.Results[i] = htmlRow{
			Name:         o.Name,
			Description:  o.Description,
			Status:       statusLabel(o.Status),
			Class:        string(o.Status),
			Current:      o.CurrentValue,
			Expected:     strings.Join(o.Expected, ", "),
			QueryCommand: o.QueryCommand,
		}
	}

	return htmlTmpl.Execute(w, doc)
}
