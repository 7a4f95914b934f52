package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/db"
	"github.com/averylane/shiftwise/internal/domain"
)

// SQLiteWorkerRepo implements WorkerRepo using a SQLite database.
type SQLiteWorkerRepo struct {
	db db.DBTX
}

// NewSQLiteWorkerRepo creates a new SQLiteWorkerRepo.
func NewSQLiteWorkerRepo(conn db.DBTX) *SQLiteWorkerRepo {
	return &SQLiteWorkerRepo{db: conn}
}

func (r *SQLiteWorkerRepo) Create(ctx context.Context, w *domain.Worker) error {
	query := `INSERT INTO workers (id, name, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Name,
		w.Role,
		string(w.Status),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting worker: %w", err)
	}
	return nil
}

func (r *SQLiteWorkerRepo) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	query := `SELECT id, name, role, status, created_at, updated_at FROM workers WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanWorker(row)
}

func (r *SQLiteWorkerRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Worker, error) {
	query := `SELECT id, name, role, status, created_at, updated_at FROM workers`
	if !includeInactive {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workers: %w", err)
	}
	defer rows.Close()

	var workers []*domain.Worker
	for rows.Next() {
		var w domain.Worker
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&w.ID, &w.Name, &w.Role, &w.Status, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning worker row: %w", err)
		}
		if err := populateWorkerTimes(&w, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		workers = append(workers, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workers: %w", err)
	}
	return workers, nil
}

func (r *SQLiteWorkerRepo) Update(ctx context.Context, w *domain.Worker) error {
	query := `UPDATE workers SET name = ?, role = ?, status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, w.Name, w.Role, string(w.Status), nowUTC(), w.ID)
	if err != nil {
		return fmt.Errorf("updating worker: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("worker %s: %w", w.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteWorkerRepo) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE workers SET status = 'inactive', updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("deactivating worker: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deactivate result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("worker %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteWorkerRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM workers WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting worker: %w", err)
	}
	return nil
}

// scanWorker scans a single worker from a *sql.Row.
func (r *SQLiteWorkerRepo) scanWorker(row *sql.Row) (*domain.Worker, error) {
	var w domain.Worker
	var createdAtStr, updatedAtStr string

	err := row.Scan(&w.ID, &w.Name, &w.Role, &w.Status, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("worker: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning worker: %w", err)
	}

	if err := populateWorkerTimes(&w, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &w, nil
}

func populateWorkerTimes(w *domain.Worker, createdAtStr, updatedAtStr string) error {
	var err error
	w.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	w.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
