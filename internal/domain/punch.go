package domain

import "time"

// PunchEvent is a single immutable worker action from the punch log.
// Timestamps are stored UTC; the reporting timezone is applied only when
// bucketing events into calendar days.
type PunchEvent struct {
	ID        string
	WorkerID  string
	Kind      PunchKind
	Timestamp time.Time
	Note      string
	CreatedAt time.Time
}
