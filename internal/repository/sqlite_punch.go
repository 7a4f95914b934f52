package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/averylane/shiftwise/internal/db"
	"github.com/averylane/shiftwise/internal/domain"
)

// SQLitePunchRepo implements PunchRepo using a SQLite database.
type SQLitePunchRepo struct {
	db db.DBTX
}

// NewSQLitePunchRepo creates a new SQLitePunchRepo.
func NewSQLitePunchRepo(conn db.DBTX) *SQLitePunchRepo {
	return &SQLitePunchRepo{db: conn}
}

func (r *SQLitePunchRepo) Append(ctx context.Context, e *domain.PunchEvent) error {
	query := `INSERT INTO punch_events (id, worker_id, kind, ts, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.WorkerID,
		string(e.Kind),
		e.Timestamp.UTC().Format(time.RFC3339),
		e.Note,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending punch event: %w", err)
	}
	return nil
}

func (r *SQLitePunchRepo) GetByID(ctx context.Context, id string) (*domain.PunchEvent, error) {
	query := `SELECT id, worker_id, kind, ts, note, created_at FROM punch_events WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPunch(row)
}

func (r *SQLitePunchRepo) ListRange(ctx context.Context, workerID string, start, end time.Time) ([]domain.PunchEvent, error) {
	query := `SELECT id, worker_id, kind, ts, note, created_at FROM punch_events
		WHERE ts >= ? AND ts < ?`
	args := []any{
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	}
	if workerID != "" {
		query += ` AND worker_id = ?`
		args = append(args, workerID)
	}
	query += ` ORDER BY ts, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing punch events: %w", err)
	}
	defer rows.Close()
	return r.scanPunches(rows)
}

func (r *SQLitePunchRepo) LastForWorker(ctx context.Context, workerID string) (*domain.PunchEvent, error) {
	query := `SELECT id, worker_id, kind, ts, note, created_at FROM punch_events
		WHERE worker_id = ? ORDER BY ts DESC, id DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, workerID)
	return r.scanPunch(row)
}

func (r *SQLitePunchRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM punch_events WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting punch event: %w", err)
	}
	return nil
}

// scanPunch scans a single punch event from a *sql.Row.
func (r *SQLitePunchRepo) scanPunch(row *sql.Row) (*domain.PunchEvent, error) {
	var e domain.PunchEvent
	var tsStr, createdAtStr string

	err := row.Scan(&e.ID, &e.WorkerID, &e.Kind, &tsStr, &e.Note, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("punch event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning punch event: %w", err)
	}

	if err := populatePunchTimes(&e, tsStr, createdAtStr); err != nil {
		return nil, err
	}
	return &e, nil
}

// scanPunches scans multiple punch events from *sql.Rows.
func (r *SQLitePunchRepo) scanPunches(rows *sql.Rows) ([]domain.PunchEvent, error) {
	var events []domain.PunchEvent
	for rows.Next() {
		var e domain.PunchEvent
		var tsStr, createdAtStr string

		if err := rows.Scan(&e.ID, &e.WorkerID, &e.Kind, &tsStr, &e.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning punch event row: %w", err)
		}
		if err := populatePunchTimes(&e, tsStr, createdAtStr); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating punch events: %w", err)
	}
	return events, nil
}

func populatePunchTimes(e *domain.PunchEvent, tsStr, createdAtStr string) error {
	var err error
	e.Timestamp, err = time.Parse(time.RFC3339, tsStr)
	if err != nil {
		return fmt.Errorf("parsing ts: %w", err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	return nil
}
