package attendance

import (
	"sort"
	"strings"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
)

// NameLookup resolves a worker id to a display name. The second return
// reports whether the id resolved; aggregation falls back to the raw id
// and never fails on an unknown worker.
type NameLookup func(workerID string) (string, bool)

// ReconstructAll runs Reconstruct over every normalized group.
func ReconstructAll(groups map[DayKey][]domain.PunchEvent, loc *time.Location, referenceNow time.Time) []domain.ReconstructedShift {
	shifts := make([]domain.ReconstructedShift, 0, len(groups))
	for key, events := range groups {
		shifts = append(shifts, Reconstruct(key, events, loc, referenceNow))
	}
	return shifts
}

// Aggregate converts reconstructed shifts into report rows, ordered by
// date ascending, then worker name, then worker id. Input order is
// irrelevant; the output ordering is total and deterministic.
func Aggregate(shifts []domain.ReconstructedShift, lookup NameLookup) []domain.DailySummary {
	summaries := make([]domain.DailySummary, 0, len(shifts))
	for _, shift := range shifts {
		name := shift.WorkerID
		if lookup != nil {
			if resolved, ok := lookup(shift.WorkerID); ok {
				name = resolved
			}
		}

		summaries = append(summaries, domain.DailySummary{
			WorkerID:         shift.WorkerID,
			WorkerName:       name,
			Date:             shift.Date,
			Shift:            shift,
			TotalHours:       shift.TotalWorked.Hours(),
			BreakHours:       shift.BreakTime.Hours(),
			NetHours:         shift.NetWorked.Hours(),
			HasIssues:        shift.HasIssues(),
			IssueDescription: strings.Join(shift.Issues, "; "),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.WorkerName != b.WorkerName {
			return a.WorkerName < b.WorkerName
		}
		return a.WorkerID < b.WorkerID
	})

	return summaries
}
