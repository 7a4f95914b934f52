// Package attendance reconstructs per-day shifts from an append-only log
// of punch events. All functions are pure: no clock reads, no I/O, and a
// caller-supplied reference instant, so re-running any stage on the same
// input yields identical output.
package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
)

// DayKey identifies one worker's punch activity on one calendar day in
// the reporting timezone.
type DayKey struct {
	WorkerID string
	Date     string // YYYY-MM-DD
}

// DuplicateEventError signals that an event id appeared more than once in
// a normalized group. The duplicate never reaches reconstruction; the
// caller decides whether to log-and-drop or abort the batch.
type DuplicateEventError struct {
	EventID  string
	WorkerID string
}

func (e *DuplicateEventError) Error() string {
	return fmt.Sprintf("duplicate punch event %s for worker %s", e.EventID, e.WorkerID)
}

// Normalize groups a flat, unordered event slice by (worker, calendar day)
// and sorts each group chronologically. Calendar days come from each
// event's timestamp interpreted in loc. Events sharing an exact timestamp
// order by kind rank (clock-in < break-start < break-end < clock-out),
// then by id for determinism. Duplicate ids are dropped from the groups
// and reported separately.
func Normalize(events []domain.PunchEvent, loc *time.Location) (map[DayKey][]domain.PunchEvent, []DuplicateEventError) {
	if loc == nil {
		loc = time.UTC
	}

	groups := make(map[DayKey][]domain.PunchEvent)
	seen := make(map[string]bool, len(events))
	var dups []DuplicateEventError

	for _, ev := range events {
		if seen[ev.ID] {
			dups = append(dups, DuplicateEventError{EventID: ev.ID, WorkerID: ev.WorkerID})
			continue
		}
		seen[ev.ID] = true

		key := DayKey{
			WorkerID: ev.WorkerID,
			Date:     ev.Timestamp.In(loc).Format(time.DateOnly),
		}
		groups[key] = append(groups[key], ev)
	}

	for key := range groups {
		sortGroup(groups[key])
	}

	return groups, dups
}

// sortGroup orders one worker-day group chronologically with the
// deterministic tie-break rules.
func sortGroup(events []domain.PunchEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		if ra, rb := a.Kind.SortRank(), b.Kind.SortRank(); ra != rb {
			return ra < rb
		}
		return a.ID < b.ID
	})
}
