package domain

import (
	"fmt"
	"strings"
	"time"
)

type Worker struct {
	ID        string
	Name      string
	Role      string
	Status    WorkerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a worker must carry before persistence.
func (w *Worker) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("worker name is required")
	}
	if w.Status != "" && w.Status != WorkerActive && w.Status != WorkerInactive {
		return fmt.Errorf("invalid worker status %q", w.Status)
	}
	return nil
}

// DisplayID returns a short identifier suitable for table cells.
func (w *Worker) DisplayID() string {
	if len(w.ID) >= 8 {
		return w.ID[:8]
	}
	return w.ID
}
