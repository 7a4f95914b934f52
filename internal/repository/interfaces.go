package repository

import (
	"context"
	"errors"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
)

// ErrNotFound is wrapped by repositories when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type WorkerRepo interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Worker, error)
	Update(ctx context.Context, w *domain.Worker) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// PunchRepo is the punch-event store. The log is append-only: there is
// deliberately no update operation, and reconstruction never mutates
// what it reads.
type PunchRepo interface {
	Append(ctx context.Context, e *domain.PunchEvent) error
	GetByID(ctx context.Context, id string) (*domain.PunchEvent, error)
	// ListRange returns events with start <= ts < end, oldest first.
	// workerID narrows to one worker when non-empty.
	ListRange(ctx context.Context, workerID string, start, end time.Time) ([]domain.PunchEvent, error)
	// LastForWorker returns the most recent event for a worker, or
	// ErrNotFound when the worker has never punched.
	LastForWorker(ctx context.Context, workerID string) (*domain.PunchEvent, error)
	Delete(ctx context.Context, id string) error
}

type ShopProfileRepo interface {
	Get(ctx context.Context) (*domain.ShopProfile, error)
	Upsert(ctx context.Context, p *domain.ShopProfile) error
}
