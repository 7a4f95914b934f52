package service

import (
	"context"
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/attendance"
	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/repository"
)

type reportService struct {
	punches  repository.PunchRepo
	workers  repository.WorkerRepo
	profiles repository.ShopProfileRepo
	observer UseCaseObserver
}

func NewReportService(punches repository.PunchRepo, workers repository.WorkerRepo, profiles repository.ShopProfileRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		punches:  punches,
		workers:  workers,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate rebuilds every shift in the requested range from raw punch
// events. Any failure is fatal for the whole report; partial rows are
// never returned.
func (s *reportService) Generate(ctx context.Context, req ReportRequest) (result *ReportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"from": req.From, "to": req.To}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading shop profile: %w", err)
	}
	loc, err := profile.Location()
	if err != nil {
		return nil, fmt.Errorf("resolving shop timezone: %w", err)
	}

	start, end, err := parseRange(req.From, req.To, loc)
	if err != nil {
		return nil, err
	}

	events, err := s.punches.ListRange(ctx, req.WorkerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading punch events: %w", err)
	}

	referenceNow := req.Now
	if referenceNow.IsZero() {
		referenceNow = time.Now()
	}

	groups, dropped := attendance.Normalize(events, loc)
	if len(dropped) > 0 {
		fields["dropped_duplicates"] = len(dropped)
	}
	shifts := attendance.ReconstructAll(groups, loc, referenceNow)

	lookup, err := s.nameLookup(ctx)
	if err != nil {
		return nil, err
	}
	rows := attendance.Aggregate(shifts, lookup)
	fields["rows"] = len(rows)

	result = &ReportResult{
		Rows:              rows,
		Totals:            sumTotals(rows),
		DroppedDuplicates: dropped,
		Timezone:          loc.String(),
		Locale:            profile.Locale,
	}
	return result, nil
}

// nameLookup resolves worker names across active and inactive workers so
// historical rows keep their names after deactivation.
func (s *reportService) nameLookup(ctx context.Context) (attendance.NameLookup, error) {
	workers, err := s.workers.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("loading workers: %w", err)
	}
	byID := make(map[string]string, len(workers))
	for _, w := range workers {
		byID[w.ID] = w.Name
	}
	return func(workerID string) (string, bool) {
		name, ok := byID[workerID]
		return name, ok
	}, nil
}

// parseRange turns inclusive calendar dates into a half-open instant
// window in the shop timezone.
func parseRange(from, to string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", from, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q: expected YYYY-MM-DD", from)
	}
	toDay, err := time.ParseInLocation("2006-01-02", to, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q: expected YYYY-MM-DD", to)
	}
	if toDay.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("to date %s is before from date %s", to, from)
	}
	return start, toDay.AddDate(0, 0, 1), nil
}

func sumTotals(rows []domain.DailySummary) ReportTotals {
	var t ReportTotals
	for _, row := range rows {
		t.TotalHours += row.TotalHours
		t.BreakHours += row.BreakHours
		t.NetHours += row.NetHours
		if row.HasIssues {
			t.IssueRows++
		}
	}
	return t
}
