package testutil

import (
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/google/uuid"
)

// Worker options
type WorkerOption func(*domain.Worker)

func WithRole(role string) WorkerOption {
	return func(w *domain.Worker) {
		w.Role = role
	}
}

func WithWorkerStatus(s domain.WorkerStatus) WorkerOption {
	return func(w *domain.Worker) {
		w.Status = s
	}
}

func NewTestWorker(name string, opts ...WorkerOption) *domain.Worker {
	now := time.Now().UTC()
	w := &domain.Worker{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      "stylist",
		Status:    domain.WorkerActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Punch options
type PunchOption func(*domain.PunchEvent)

func WithPunchNote(note string) PunchOption {
	return func(e *domain.PunchEvent) {
		e.Note = note
	}
}

func WithPunchID(id string) PunchOption {
	return func(e *domain.PunchEvent) {
		e.ID = id
	}
}

func NewTestPunch(workerID string, kind domain.PunchKind, at time.Time, opts ...PunchOption) *domain.PunchEvent {
	e := &domain.PunchEvent{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		Kind:      kind,
		Timestamp: at.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PunchSequence builds an ordinary worked day: clock-in at inHour, a
// break from breakHour lasting breakMin minutes, clock-out at outHour.
// Pass breakMin = 0 to skip the break.
func PunchSequence(workerID string, day time.Time, inHour, outHour, breakHour, breakMin int) []*domain.PunchEvent {
	events := []*domain.PunchEvent{
		NewTestPunch(workerID, domain.PunchClockIn, day.Add(time.Duration(inHour)*time.Hour)),
	}
	if breakMin > 0 {
		start := day.Add(time.Duration(breakHour) * time.Hour)
		events = append(events,
			NewTestPunch(workerID, domain.PunchBreakStart, start),
			NewTestPunch(workerID, domain.PunchBreakEnd, start.Add(time.Duration(breakMin)*time.Minute)),
		)
	}
	events = append(events,
		NewTestPunch(workerID, domain.PunchClockOut, day.Add(time.Duration(outHour)*time.Hour)),
	)
	return events
}
