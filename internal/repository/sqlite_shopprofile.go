package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/averylane/shiftwise/internal/db"
	"github.com/averylane/shiftwise/internal/domain"
)

// SQLiteShopProfileRepo implements ShopProfileRepo using a SQLite database.
type SQLiteShopProfileRepo struct {
	db db.DBTX
}

// NewSQLiteShopProfileRepo creates a new SQLiteShopProfileRepo.
func NewSQLiteShopProfileRepo(conn db.DBTX) *SQLiteShopProfileRepo {
	return &SQLiteShopProfileRepo{db: conn}
}

func (r *SQLiteShopProfileRepo) Get(ctx context.Context) (*domain.ShopProfile, error) {
	query := `SELECT id, name, timezone, locale FROM shop_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.ShopProfile
	err := row.Scan(&p.ID, &p.Name, &p.Timezone, &p.Locale)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shop profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning shop profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteShopProfileRepo) Upsert(ctx context.Context, p *domain.ShopProfile) error {
	if p.ID == "" {
		p.ID = "default"
	}
	query := `INSERT OR REPLACE INTO shop_profile (id, name, timezone, locale) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Timezone, p.Locale)
	if err != nil {
		return fmt.Errorf("upserting shop profile: %w", err)
	}
	return nil
}
