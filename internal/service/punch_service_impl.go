package service

import (
	"context"
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/db"
	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/repository"
	"github.com/google/uuid"
)

type punchService struct {
	punches  repository.PunchRepo
	workers  repository.WorkerRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPunchService(punches repository.PunchRepo, workers repository.WorkerRepo, uow db.UnitOfWork, observers ...UseCaseObserver) PunchService {
	return &punchService{
		punches:  punches,
		workers:  workers,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Record appends a punch event for an active worker. Events are stored as
// they arrive; ordering and consistency problems are surfaced at report
// time, not rejected here.
func (s *punchService) Record(ctx context.Context, workerID string, kind domain.PunchKind, at time.Time, note string) (event *domain.PunchEvent, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "record-punch",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"worker": workerID, "kind": string(kind)},
		})
	}()

	if !domain.ValidPunchKinds[kind] {
		return nil, fmt.Errorf("unknown punch kind %q", kind)
	}
	if at.IsZero() {
		at = time.Now()
	}

	event = &domain.PunchEvent{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		Kind:      kind,
		Timestamp: at,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txWorkers := repository.NewSQLiteWorkerRepo(tx)
		txPunches := repository.NewSQLitePunchRepo(tx)

		w, err := txWorkers.GetByID(ctx, workerID)
		if err != nil {
			return err
		}
		if w.Status != domain.WorkerActive {
			return fmt.Errorf("worker %s is inactive", w.DisplayID())
		}
		return txPunches.Append(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *punchService) Last(ctx context.Context, workerID string) (*domain.PunchEvent, error) {
	return s.punches.LastForWorker(ctx, workerID)
}

func (s *punchService) Delete(ctx context.Context, id string) error {
	return s.punches.Delete(ctx, id)
}
