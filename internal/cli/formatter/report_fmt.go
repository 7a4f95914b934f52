package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/i18n"
	"github.com/averylane/shiftwise/internal/service"
)

// FormatReport renders the daily attendance table with a totals footer.
func FormatReport(result *service.ReportResult, loc *time.Location, lang string) string {
	if len(result.Rows) == 0 {
		return Dim(i18n.T(lang, "no_rows"))
	}

	headers := []string{
		i18n.T(lang, "header_date"),
		i18n.T(lang, "header_worker"),
		i18n.T(lang, "header_clock_in"),
		i18n.T(lang, "header_clock_out"),
		i18n.T(lang, "header_break"),
		i18n.T(lang, "header_total"),
		i18n.T(lang, "header_net"),
		i18n.T(lang, "header_status"),
		i18n.T(lang, "header_issues"),
	}

	rows := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, []string{
			row.Date,
			row.WorkerName,
			clockCell(row.Shift.ClockIn, loc, lang),
			clockCell(row.Shift.ClockOut, loc, lang),
			i18n.FormatDuration(row.Shift.BreakTime, lang),
			i18n.FormatDuration(row.Shift.TotalWorked, lang),
			i18n.FormatDuration(row.Shift.NetWorked, lang),
			ShiftStatusPill(row.Shift.Status),
			issueCell(row),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(formatTotals(result, lang))

	if len(result.DroppedDuplicates) > 0 {
		b.WriteString("\n")
		for _, d := range result.DroppedDuplicates {
			b.WriteString(StyleYellow.Render("⚠ " + d.Error()))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func formatTotals(result *service.ReportResult, lang string) string {
	days := make(map[string]bool)
	workers := make(map[string]bool)
	for _, row := range result.Rows {
		days[row.Date] = true
		workers[row.WorkerID] = true
	}

	label := i18n.T(lang, "totals_label", map[string]any{
		"Days":    len(days),
		"Workers": len(workers),
	})
	line := fmt.Sprintf("%s  %s: %s  %s: %s  %s: %s",
		Bold(label),
		i18n.T(lang, "header_total"), FormatHours(result.Totals.TotalHours),
		i18n.T(lang, "header_break"), FormatHours(result.Totals.BreakHours),
		i18n.T(lang, "header_net"), FormatHours(result.Totals.NetHours),
	)
	if result.Totals.IssueRows > 0 {
		line += "  " + StyleYellow.Render(fmt.Sprintf("⚠ %d", result.Totals.IssueRows))
	}
	return line
}

func clockCell(t *time.Time, loc *time.Location, lang string) string {
	if t == nil {
		return Dim("—")
	}
	return i18n.FormatClock(*t, loc, lang)
}

func issueCell(row domain.DailySummary) string {
	if !row.HasIssues {
		return ""
	}
	return IssueBadge(true) + " " + row.IssueDescription
}
