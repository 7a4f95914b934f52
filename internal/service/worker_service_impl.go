package service

import (
	"context"
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/repository"
	"github.com/google/uuid"
)

type workerService struct {
	workers repository.WorkerRepo
}

func NewWorkerService(workers repository.WorkerRepo) WorkerService {
	return &workerService{workers: workers}
}

func (s *workerService) Create(ctx context.Context, w *domain.Worker) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.Status == "" {
		w.Status = domain.WorkerActive
	}
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	if err := w.Validate(); err != nil {
		return err
	}
	return s.workers.Create(ctx, w)
}

func (s *workerService) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	return s.workers.GetByID(ctx, id)
}

func (s *workerService) List(ctx context.Context, includeInactive bool) ([]*domain.Worker, error) {
	return s.workers.List(ctx, includeInactive)
}

func (s *workerService) Update(ctx context.Context, w *domain.Worker) error {
	if err := w.Validate(); err != nil {
		return err
	}
	w.UpdatedAt = time.Now().UTC()
	return s.workers.Update(ctx, w)
}

func (s *workerService) Deactivate(ctx context.Context, id string) error {
	return s.workers.Deactivate(ctx, id)
}

// Delete removes a worker and, via cascade, every punch they ever recorded.
// Deactivation is the normal path; deletion requires force.
func (s *workerService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		w, err := s.workers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if w.Status != domain.WorkerInactive {
			return fmt.Errorf("worker must be deactivated before deletion (use --force to override)")
		}
	}
	return s.workers.Delete(ctx, id)
}
