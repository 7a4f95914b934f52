package service

import (
	"context"
	"testing"
	"time"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Generate_SingleCleanDay(t *testing.T) {
	workers, punches, profiles, _ := setupRepos(t)
	ctx := context.Background()

	w := testutil.NewTestWorker("Dana")
	require.NoError(t, workers.Create(ctx, w))

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	for _, e := range testutil.PunchSequence(w.ID, day, 9, 17, 12, 30) {
		require.NoError(t, punches.Append(ctx, e))
	}

	svc := NewReportService(punches, workers, profiles)
	result, err := svc.Generate(ctx, ReportRequest{
		From: "2026-03-09",
		To:   "2026-03-09",
		Now:  day.AddDate(0, 0, 2),
	})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	row := result.Rows[0]
	assert.Equal(t, "2026-03-09", row.Date)
	assert.Equal(t, "Dana", row.WorkerName)
	assert.Equal(t, domain.ShiftComplete, row.Shift.Status)
	assert.InDelta(t, 8.0, row.TotalHours, 0.001)
	assert.InDelta(t, 0.5, row.BreakHours, 0.001)
	assert.InDelta(t, 7.5, row.NetHours, 0.001)
	assert.False(t, row.HasIssues)

	assert.InDelta(t, 7.5, result.Totals.NetHours, 0.001)
	assert.Equal(t, 0, result.Totals.IssueRows)
	assert.Equal(t, "UTC", result.Timezone)
	assert.Equal(t, "en", result.Locale)
}

func TestReportService_Generate_MultiDayMultiWorkerSorted(t *testing.T) {
	workers, punches, profiles, _ := setupRepos(t)
	ctx := context.Background()

	ariel := testutil.NewTestWorker("Ariel")
	dana := testutil.NewTestWorker("Dana")
	require.NoError(t, workers.Create(ctx, dana))
	require.NoError(t, workers.Create(ctx, ariel))

	day1 := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	for _, e := range testutil.PunchSequence(dana.ID, day1, 9, 17, 0, 0) {
		require.NoError(t, punches.Append(ctx, e))
	}
	for _, e := range testutil.PunchSequence(ariel.ID, day2, 10, 16, 0, 0) {
		require.NoError(t, punches.Append(ctx, e))
	}
	for _, e := range testutil.PunchSequence(dana.ID, day2, 9, 15, 0, 0) {
		require.NoError(t, punches.Append(ctx, e))
	}

	svc := NewReportService(punches, workers, profiles)
	result, err := svc.Generate(ctx, ReportRequest{
		From: "2026-03-09",
		To:   "2026-03-10",
		Now:  day1.AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	assert.Equal(t, "2026-03-09", result.Rows[0].Date)
	assert.Equal(t, "Dana", result.Rows[0].WorkerName)
	assert.Equal(t, "2026-03-10", result.Rows[1].Date)
	assert.Equal(t, "Ariel", result.Rows[1].WorkerName, "same-date rows sort by name")
	assert.Equal(t, "Dana", result.Rows[2].WorkerName)

	assert.InDelta(t, 20.0, result.Totals.NetHours, 0.001)
}

func TestReportService_Generate_WorkerFilter(t *testing.T) {
	workers, punches, profiles, _ := setupRepos(t)
	ctx := context.Background()

	dana := testutil.NewTestWorker("Dana")
	ariel := testutil.NewTestWorker("Ariel")
	require.NoError(t, workers.Create(ctx, dana))
	require.NoError(t, workers.Create(ctx, ariel))

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	for _, e := range testutil.PunchSequence(dana.ID, day, 9, 17, 0, 0) {
		require.NoError(t, punches.Append(ctx, e))
	}
	for _, e := range testutil.PunchSequence(ariel.ID, day, 10, 16, 0, 0) {
		require.NoError(t, punches.Append(ctx, e))
	}

	svc := NewReportService(punches, workers, profiles)
	result, err := svc.Generate(ctx, ReportRequest{
		From:     "2026-03-09",
		To:       "2026-03-09",
		WorkerID: dana.ID,
		Now:      day.AddDate(0, 0, 2),
	})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Dana", result.Rows[0].WorkerName)
}

func TestReportService_Generate_RangeBoundariesInclusive(t *testing.T) {
	workers, punches, profiles, _ := setupRepos(t)
	ctx := context.Background()

	w := testutil.NewTestWorker("Dana")
	require.NoError(t, workers.Create(ctx, w))

	before := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	inRange := before.AddDate(0, 0, 1)
	after := before.AddDate(0, 0, 2)
	for _, day := range []time.Time{before, inRange, after} {
		for _, e := range testutil.PunchSequence(w.ID, day, 9, 17, 0, 0) {
			require.NoError(t, punches.Append(ctx, e))
		}
	}

	svc := NewReportService(punches, workers, profiles)
	result, err := svc.Generate(ctx, ReportRequest{
		From: "2026-03-09",
		To:   "2026-03-09",
		Now:  after.AddDate(0, 0, 2),
	})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "2026-03-09", result.Rows[0].Date)
}

func TestReportService_Generate_IncompleteShiftFlagged(t *testing.T) {
	workers, punches, profiles, _ := setupRepos(t)
	ctx := context.Background()

	w := testutil.NewTestWorker("Dana")
	require.NoError(t, workers.Create(ctx, w))

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, punches.Append(ctx, testutil.NewTestPunch(w.ID, domain.PunchClockIn, day.Add(9*time.Hour))))

	svc := NewReportService(punches, workers, profiles)
	result, err := svc.Generate(ctx, ReportRequest{
		From: "2026-03-09",
		To:   "2026-03-09",
		Now:  day.AddDate(0, 0, 2),
	})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	row := result.Rows[0]
	assert.Equal(t, domain.ShiftIncomplete, row.Shift.Status)
	assert.True(t, row.HasIssues)
	assert.Contains(t, row.IssueDescription, "missing clock-out")
	assert.Equal(t, 1, result.Totals.IssueRows)
}

func TestReportService_Generate_ReportsDroppedDuplicates(t *testing.T) {
	workers, punches, profiles, _ := setupRepos(t)
	ctx := context.Background()

	w := testutil.NewTestWorker("Dana")
	require.NoError(t, workers.Create(ctx, w))

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	for _, e := range testutil.PunchSequence(w.ID, day, 9, 17, 0, 0) {
		require.NoError(t, punches.Append(ctx, e))
	}

	svc := NewReportService(punches, workers, profiles)
	result, err := svc.Generate(ctx, ReportRequest{
		From: "2026-03-09",
		To:   "2026-03-09",
		Now:  day.AddDate(0, 0, 2),
	})
	require.NoError(t, err)
	// Storage enforces unique event ids, so a well-formed database never
	// yields duplicates here.
	assert.Empty(t, result.DroppedDuplicates)
}

func TestReportService_Generate_NameSurvivesDeactivation(t *testing.T) {
	workers, punches, profiles, _ := setupRepos(t)
	ctx := context.Background()

	w := testutil.NewTestWorker("Dana")
	require.NoError(t, workers.Create(ctx, w))

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	for _, e := range testutil.PunchSequence(w.ID, day, 9, 17, 0, 0) {
		require.NoError(t, punches.Append(ctx, e))
	}
	require.NoError(t, workers.Deactivate(ctx, w.ID))

	svc := NewReportService(punches, workers, profiles)
	result, err := svc.Generate(ctx, ReportRequest{
		From: "2026-03-09",
		To:   "2026-03-09",
		Now:  day.AddDate(0, 0, 2),
	})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Dana", result.Rows[0].WorkerName)
}

func TestReportService_Generate_InvalidRange(t *testing.T) {
	workers, punches, profiles, _ := setupRepos(t)
	svc := NewReportService(punches, workers, profiles)
	ctx := context.Background()

	_, err := svc.Generate(ctx, ReportRequest{From: "march 9", To: "2026-03-09"})
	assert.ErrorContains(t, err, "invalid from date")

	_, err = svc.Generate(ctx, ReportRequest{From: "2026-03-10", To: "2026-03-09"})
	assert.ErrorContains(t, err, "before from date")
}

func TestReportService_Generate_EmptyRange(t *testing.T) {
	workers, punches, profiles, _ := setupRepos(t)
	svc := NewReportService(punches, workers, profiles)

	result, err := svc.Generate(context.Background(), ReportRequest{
		From: "2026-03-09",
		To:   "2026-03-09",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Zero(t, result.Totals.NetHours)
}
