package attendance

import (
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
)

// Issue strings emitted by reconstruction. Each malformed punch pattern
// maps to exactly one of these; no pattern is a failure.
const (
	IssueMultipleClockIns     = "multiple clock-ins"
	IssueBreakStartNoShift    = "break start without active shift"
	IssueNestedBreakStart     = "nested break start"
	IssueBreakEndBeforeStart  = "break end before break start"
	IssueBreakEndUnmatched    = "break end without matching break start"
	IssueClockOutOnBreak      = "clocked out while on break"
	IssueClockOutNoClockIn    = "clock-out without clock-in"
	IssueMissingClockOut      = "missing clock-out"
	IssueMissingClockOutBreak = "missing clock-out (on break)"
)

// shiftState is the scan state of the reconstruction machine.
type shiftState int

const (
	stateIdle shiftState = iota
	stateWorking
	stateOnBreak
)

// Reconstruct pairs one worker-day's sorted events into exactly one shift.
// It is total: any event sequence, however malformed, produces a shift,
// with every unconsumed event contributing an issue. referenceNow is the
// caller's explicit "now"; for days already past in loc, open durations
// cap at the end of the day instead of referenceNow.
func Reconstruct(key DayKey, events []domain.PunchEvent, loc *time.Location, referenceNow time.Time) domain.ReconstructedShift {
	if loc == nil {
		loc = time.UTC
	}

	shift := domain.ReconstructedShift{
		WorkerID: key.WorkerID,
		Date:     key.Date,
		Status:   domain.ShiftIncomplete,
	}

	state := stateIdle
	for _, ev := range events {
		switch ev.Kind {
		case domain.PunchClockIn:
			if state == stateIdle && shift.ClockIn == nil {
				ts := ev.Timestamp
				shift.ClockIn = &ts
				state = stateWorking
				continue
			}
			// A later clock-in keeps the first clock-in for interval
			// math; the duplicate only feeds the issue note. A second
			// clock-in mid-shift still means the worker is working.
			addIssue(&shift, IssueMultipleClockIns, ev, loc)
			if state != stateIdle {
				state = stateWorking
			}

		case domain.PunchBreakStart:
			switch state {
			case stateWorking:
				shift.Breaks = append(shift.Breaks, domain.BreakInterval{Start: ev.Timestamp})
				state = stateOnBreak
			case stateOnBreak:
				addIssue(&shift, IssueNestedBreakStart, ev, loc)
			default:
				addIssue(&shift, IssueBreakStartNoShift, ev, loc)
			}

		case domain.PunchBreakEnd:
			if state == stateOnBreak {
				closeOpenBreak(&shift, ev.Timestamp, ev, loc)
				state = stateWorking
				continue
			}
			addIssue(&shift, IssueBreakEndUnmatched, ev, loc)

		case domain.PunchClockOut:
			switch state {
			case stateWorking:
				ts := ev.Timestamp
				shift.ClockOut = &ts
				state = stateIdle
			case stateOnBreak:
				closeOpenBreak(&shift, ev.Timestamp, ev, loc)
				addIssue(&shift, IssueClockOutOnBreak, ev, loc)
				ts := ev.Timestamp
				shift.ClockOut = &ts
				state = stateIdle
			default:
				addIssue(&shift, IssueClockOutNoClockIn, ev, loc)
			}

		default:
			// Unknown kinds cannot pair into anything; surface them.
			addIssue(&shift, fmt.Sprintf("unrecognized punch kind %q", ev.Kind), ev, loc)
		}
	}

	ref := effectiveReference(key.Date, loc, referenceNow)
	today := isToday(key.Date, loc, referenceNow)

	switch state {
	case stateWorking:
		if today {
			shift.Status = domain.ShiftInProgress
		} else {
			shift.Status = domain.ShiftIncomplete
			shift.Issues = append(shift.Issues, IssueMissingClockOut)
		}
	case stateOnBreak:
		if today {
			shift.Status = domain.ShiftOnBreak
		} else {
			shift.Status = domain.ShiftIncomplete
			shift.Issues = append(shift.Issues, IssueMissingClockOutBreak)
		}
	default:
		if shift.ClockIn != nil && shift.ClockOut != nil && allBreaksClosed(shift.Breaks) {
			shift.Status = domain.ShiftComplete
		} else {
			shift.Status = domain.ShiftIncomplete
		}
	}

	computeDurations(&shift, ref)
	return shift
}

func allBreaksClosed(breaks []domain.BreakInterval) bool {
	for _, b := range breaks {
		if !b.Closed() {
			return false
		}
	}
	return true
}

// closeOpenBreak sets the end of the trailing open break interval,
// clamping clock-skewed spans (end before start) to zero width.
func closeOpenBreak(shift *domain.ReconstructedShift, end time.Time, ev domain.PunchEvent, loc *time.Location) {
	last := &shift.Breaks[len(shift.Breaks)-1]
	if end.Before(last.Start) {
		clamped := last.Start
		last.End = &clamped
		addIssue(shift, IssueBreakEndBeforeStart, ev, loc)
		return
	}
	e := end
	last.End = &e
}

// computeDurations fills the three duration fields against ref.
func computeDurations(shift *domain.ReconstructedShift, ref time.Time) {
	if shift.ClockIn != nil {
		end := ref
		if shift.ClockOut != nil {
			end = *shift.ClockOut
		}
		if total := end.Sub(*shift.ClockIn); total > 0 {
			shift.TotalWorked = total
		}
	}

	for _, b := range shift.Breaks {
		shift.BreakTime += b.DurationAt(ref)
	}

	if net := shift.TotalWorked - shift.BreakTime; net > 0 {
		shift.NetWorked = net
	}
}

// addIssue appends an issue annotated with the offending event's wall
// time in the reporting timezone.
func addIssue(shift *domain.ReconstructedShift, issue string, ev domain.PunchEvent, loc *time.Location) {
	shift.Issues = append(shift.Issues,
		fmt.Sprintf("%s (event at %s)", issue, ev.Timestamp.In(loc).Format("15:04")))
}

// effectiveReference caps the open-interval reference at the end of the
// shift's calendar day. A shift left open yesterday accrues time to
// midnight, not to whenever the report happens to run.
func effectiveReference(date string, loc *time.Location, referenceNow time.Time) time.Time {
	day, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return referenceNow
	}
	dayEnd := day.AddDate(0, 0, 1)
	if referenceNow.Before(dayEnd) {
		return referenceNow
	}
	return dayEnd
}

// isToday reports whether date is the current calendar day at
// referenceNow in the reporting timezone.
func isToday(date string, loc *time.Location, referenceNow time.Time) bool {
	return referenceNow.In(loc).Format(time.DateOnly) == date
}
