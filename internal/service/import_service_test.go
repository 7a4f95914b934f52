package service

import (
	"context"
	"testing"
	"time"

	"github.com/averylane/shiftwise/internal/importer"
	"github.com/averylane/shiftwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportService_ImportsValidRows(t *testing.T) {
	workers, punches, _, uow := setupRepos(t)
	ctx := context.Background()

	w := testutil.NewTestWorker("Dana")
	require.NoError(t, workers.Create(ctx, w))

	schema := &importer.ImportSchema{
		Punches: []importer.PunchImport{
			{ID: "ext-1", Worker: w.ID, Kind: "clock_in", Timestamp: "2026-03-09T09:00:00Z"},
			{ID: "ext-2", Worker: "Dana", Kind: "clock_out", Timestamp: "2026-03-09T17:00:00Z"},
		},
	}

	svc := NewImportService(uow)
	result, err := svc.ImportPunchesFromSchema(ctx, schema)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Rejected)

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	events, err := punches.ListRange(ctx, w.ID, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "ext-1", events[0].ID)
}

func TestImportService_QuarantinesBadRowsImportsRest(t *testing.T) {
	workers, punches, _, uow := setupRepos(t)
	ctx := context.Background()

	w := testutil.NewTestWorker("Dana")
	require.NoError(t, workers.Create(ctx, w))

	schema := &importer.ImportSchema{
		Punches: []importer.PunchImport{
			{Worker: "Dana", Kind: "clock_in", Timestamp: "2026-03-09T09:00:00Z"},
			{Worker: "Dana", Kind: "nap", Timestamp: "2026-03-09T12:00:00Z"},
			{Worker: "Nobody", Kind: "clock_in", Timestamp: "2026-03-09T10:00:00Z"},
			{Worker: "Dana", Kind: "clock_out", Timestamp: "2026-03-09T17:00:00Z"},
		},
	}

	svc := NewImportService(uow)
	result, err := svc.ImportPunchesFromSchema(ctx, schema)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Rejected, 2)
	assert.Equal(t, 1, result.Rejected[0].Index)
	assert.Equal(t, 2, result.Rejected[1].Index)

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	events, err := punches.ListRange(ctx, w.ID, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestImportService_AmbiguousNameRejected(t *testing.T) {
	workers, _, _, uow := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, workers.Create(ctx, testutil.NewTestWorker("Dana")))
	require.NoError(t, workers.Create(ctx, testutil.NewTestWorker("Dana")))

	schema := &importer.ImportSchema{
		Punches: []importer.PunchImport{
			{Worker: "Dana", Kind: "clock_in", Timestamp: "2026-03-09T09:00:00Z"},
		},
	}

	svc := NewImportService(uow)
	result, err := svc.ImportPunchesFromSchema(ctx, schema)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Imported)
	require.Len(t, result.Rejected, 1)
	assert.Contains(t, result.Rejected[0].Error(), "unknown worker")
}

func TestImportService_DuplicateStoredIDFailsWholeImport(t *testing.T) {
	workers, punches, _, uow := setupRepos(t)
	ctx := context.Background()

	w := testutil.NewTestWorker("Dana")
	require.NoError(t, workers.Create(ctx, w))
	existing := testutil.NewTestPunch(w.ID, "clock_in", time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC), testutil.WithPunchID("ext-1"))
	require.NoError(t, punches.Append(ctx, existing))

	schema := &importer.ImportSchema{
		Punches: []importer.PunchImport{
			{ID: "ext-9", Worker: "Dana", Kind: "clock_in", Timestamp: "2026-03-09T09:00:00Z"},
			{ID: "ext-1", Worker: "Dana", Kind: "clock_out", Timestamp: "2026-03-09T17:00:00Z"},
		},
	}

	svc := NewImportService(uow)
	_, err := svc.ImportPunchesFromSchema(ctx, schema)
	require.Error(t, err)

	// Transaction rolled back: the otherwise-fine first row is not stored.
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	events, listErr := punches.ListRange(ctx, w.ID, day, day.AddDate(0, 0, 1))
	require.NoError(t, listErr)
	assert.Empty(t, events)
}
