package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwaudit/fwaudit/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)

	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

func statusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusMatch:
		return matchStyle
	case model.StatusMismatch:
		return mismatchStyle
	case model.StatusNoValue:
		return noValueStyle
	case model.StatusCommandFailed:
		return failedStyle
	default:
		return errorStyle
	}
}

// WriteTerminal renders the report as a table for interactive use.
func WriteTerminal(w io.Writer, r *model.RunReport) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Parameter verification - %s", r.Host)))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("run %s · %s", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04:05"))))
	fmt.Fprintln(w)

	const rowFmt = "%-28s %-16s %-24s %-24s\n"
	fmt.Fprintf(w, rowFmt,
		headerStyle.Render("Parameter"),
		headerStyle.Render("Status"),
		headerStyle.Render("Current"),
		headerStyle.Render("Expected"))

	for _, o := range r.Results {
		fmt.Fprintf(w, rowFmt,
			truncate(o.Name, 28),
			statusStyle(o.Status).Render(statusLabel(o.Status)),
			truncate(o.CurrentValue, 24),
			truncate(strings.Join(o.Expected, ", "), 24))
		if o.Detail != "" {
			fmt.Fprintf(w, "  %s\n", dimStyle.Render(o.Detail))
		}
	}

	s := r.Summary
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Summary"))
	fmt.Fprintf(w, "  Total:          %d\n", s.Total)
	fmt.Fprintf(w, "  %s %d\n", matchStyle.Render("Match:         "), s.Match)
	fmt.Fprintf(w, "  %s %d\n", mismatchStyle.Render("Mismatch:      "), s.Mismatch)
	fmt.Fprintf(w, "  %s %d\n", noValueStyle.Render("No value:      "), s.NoValue)
	fmt.Fprintf(w, "  %s %d\n", failedStyle.Render("Command failed:"), s.CommandFailed)
	fmt.Fprintf(w, "  %s %d\n", errorStyle.Render("Error:         "), s.Error)
	fmt.Fprintf(w, "  Duration:       %s\n", r.Duration.Round(time.Millisecond))

	fmt.Fprintln(w)
	if s.AllMatch() {
		fmt.Fprintln(w, matchStyle.Render("All parameters match the baseline"))
	} else {
		fmt.Fprintln(w, mismatchStyle.Render("Baseline deviations found"))
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
