package service

import (
	"testing"

	"github.com/averylane/shiftwise/internal/db"
	"github.com/averylane/shiftwise/internal/repository"
	"github.com/averylane/shiftwise/internal/testutil"
)

func setupRepos(t *testing.T) (*repository.SQLiteWorkerRepo, *repository.SQLitePunchRepo, *repository.SQLiteShopProfileRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteWorkerRepo(database),
		repository.NewSQLitePunchRepo(database),
		repository.NewSQLiteShopProfileRepo(database),
		testutil.NewTestUoW(database)
}
