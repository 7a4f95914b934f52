package service

import (
	"context"
	"testing"

	"github.com/averylane/shiftwise/internal/domain"
	"github.com/averylane/shiftwise/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerService_Create_AssignsIDAndDefaults(t *testing.T) {
	workers, _, _, _ := setupRepos(t)
	svc := NewWorkerService(workers)
	ctx := context.Background()

	w := &domain.Worker{Name: "Dana", Role: "barber"}
	require.NoError(t, svc.Create(ctx, w))

	assert.NotEmpty(t, w.ID)
	assert.Equal(t, domain.WorkerActive, w.Status)
	assert.False(t, w.CreatedAt.IsZero())

	fetched, err := svc.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", fetched.Name)
}

func TestWorkerService_Create_RejectsEmptyName(t *testing.T) {
	workers, _, _, _ := setupRepos(t)
	svc := NewWorkerService(workers)

	err := svc.Create(context.Background(), &domain.Worker{Name: "  "})
	assert.Error(t, err)
}

func TestWorkerService_Delete_RequiresDeactivation(t *testing.T) {
	workers, _, _, _ := setupRepos(t)
	svc := NewWorkerService(workers)
	ctx := context.Background()

	w := &domain.Worker{Name: "Dana"}
	require.NoError(t, svc.Create(ctx, w))

	err := svc.Delete(ctx, w.ID, false)
	assert.Error(t, err, "active worker should not be deletable without force")

	require.NoError(t, svc.Deactivate(ctx, w.ID))
	require.NoError(t, svc.Delete(ctx, w.ID, false))

	_, err = svc.GetByID(ctx, w.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkerService_Delete_ForceSkipsCheck(t *testing.T) {
	workers, _, _, _ := setupRepos(t)
	svc := NewWorkerService(workers)
	ctx := context.Background()

	w := &domain.Worker{Name: "Dana"}
	require.NoError(t, svc.Create(ctx, w))

	require.NoError(t, svc.Delete(ctx, w.ID, true))

	_, err := svc.GetByID(ctx, w.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkerService_Update_RefreshesUpdatedAt(t *testing.T) {
	workers, _, _, _ := setupRepos(t)
	svc := NewWorkerService(workers)
	ctx := context.Background()

	w := &domain.Worker{Name: "Dana", Role: "barber"}
	require.NoError(t, svc.Create(ctx, w))
	created := w.UpdatedAt

	w.Role = "manager"
	require.NoError(t, svc.Update(ctx, w))

	fetched, err := svc.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "manager", fetched.Role)
	assert.False(t, fetched.UpdatedAt.Before(created))
}
