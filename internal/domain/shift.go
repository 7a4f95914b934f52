package domain

import "time"

// BreakInterval is one break within a shift. End is nil while the break
// is still open (no matching break-end before clock-out or window end).
type BreakInterval struct {
	Start time.Time
	End   *time.Time
}

// Closed reports whether the break has a recorded end.
func (b BreakInterval) Closed() bool {
	return b.End != nil
}

// DurationAt returns the break's span, using ref as the end for an open
// break. Negative spans clamp to zero.
func (b BreakInterval) DurationAt(ref time.Time) time.Duration {
	end := ref
	if b.End != nil {
		end = *b.End
	}
	d := end.Sub(b.Start)
	if d < 0 {
		return 0
	}
	return d
}

// ReconstructedShift is one worker's reconstructed work period for one
// calendar day. It is derived, never persisted: every report query
// rebuilds shifts from the punch log.
type ReconstructedShift struct {
	WorkerID string
	Date     string // YYYY-MM-DD in the shop's reporting timezone

	ClockIn  *time.Time
	ClockOut *time.Time
	Breaks   []BreakInterval

	TotalWorked time.Duration
	BreakTime   time.Duration
	NetWorked   time.Duration

	Status ShiftStatus
	Issues []string
}

// HasIssues reports whether reconstruction flagged any anomaly.
func (s *ReconstructedShift) HasIssues() bool {
	return len(s.Issues) > 0
}

// DailySummary is the externally consumed report row: one per worker per
// calendar day that has at least one punch event.
type DailySummary struct {
	WorkerID   string
	WorkerName string
	Date       string

	Shift ReconstructedShift

	TotalHours float64
	BreakHours float64
	NetHours   float64

	HasIssues        bool
	IssueDescription string
}
