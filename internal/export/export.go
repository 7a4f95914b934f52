// Package export renders daily report rows to CSV and XLSX files for
// payroll handoff.
package export

import (
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/i18n"
)

var headerIDs = []string{
	"header_date",
	"header_worker",
	"header_clock_in",
	"header_clock_out",
	"header_break",
	"header_total",
	"header_net",
	"header_status",
	"header_issues",
}

func headerRow(lang string) []string {
	out := make([]string, len(headerIDs))
	for i, id := range headerIDs {
		out[i] = i18n.T(lang, id)
	}
	return out
}

func flattenRow(row domain.DailySummary, loc *time.Location, lang string) []string {
	return []string{
		row.Date,
		row.WorkerName,
		clockOrEmpty(row.Shift.ClockIn, loc, lang),
		clockOrEmpty(row.Shift.ClockOut, loc, lang),
		i18n.FormatDuration(row.Shift.BreakTime, lang),
		i18n.FormatDuration(row.Shift.TotalWorked, lang),
		i18n.FormatDuration(row.Shift.NetWorked, lang),
		statusLabel(row.Shift.Status, lang),
		row.IssueDescription,
	}
}

func clockOrEmpty(t *time.Time, loc *time.Location, lang string) string {
	if t == nil {
		return ""
	}
	return i18n.FormatClock(*t, loc, lang)
}

func statusLabel(s domain.ShiftStatus, lang string) string {
	switch s {
	case domain.ShiftComplete:
		return i18n.T(lang, "status_complete")
	case domain.ShiftInProgress:
		return i18n.T(lang, "status_in_progress")
	case domain.ShiftOnBreak:
		return i18n.T(lang, "status_on_break")
	case domain.ShiftIncomplete:
		return i18n.T(lang, "status_incomplete")
	default:
		return string(s)
	}
}
