package service

import (
	"context"
	"time"

	"github.com/averylane/shiftwise/internal/attendance"
	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/importer"
)

type WorkerService interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Worker, error)
	Update(ctx context.Context, w *domain.Worker) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type PunchService interface {
	Record(ctx context.Context, workerID string, kind domain.PunchKind, at time.Time, note string) (*domain.PunchEvent, error)
	Last(ctx context.Context, workerID string) (*domain.PunchEvent, error)
	Delete(ctx context.Context, id string) error
}

// ReportRequest describes one reporting query. From and To are inclusive
// calendar dates (YYYY-MM-DD) interpreted in the shop timezone.
type ReportRequest struct {
	From     string
	To       string
	WorkerID string
	Now      time.Time
}

// ReportTotals sums the report rows for the range footer.
type ReportTotals struct {
	TotalHours float64
	BreakHours float64
	NetHours   float64
	IssueRows  int
}

// ReportResult is one fully reconstructed report.
type ReportResult struct {
	Rows              []domain.DailySummary
	Totals            ReportTotals
	DroppedDuplicates []attendance.DuplicateEventError
	Timezone          string
	Locale            string
}

type ReportService interface {
	Generate(ctx context.Context, req ReportRequest) (*ReportResult, error)
}

type ShopService interface {
	Get(ctx context.Context) (*domain.ShopProfile, error)
	Update(ctx context.Context, p *domain.ShopProfile) error
}

// ImportResult holds the outcome of a punch import.
type ImportResult struct {
	Imported int
	Rejected []importer.RowError
}

type ImportService interface {
	ImportPunches(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPunchesFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
