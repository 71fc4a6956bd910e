package blacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/ZeroColaa/authkeep/internal/dbx"
	"github.com/ZeroColaa/authkeep/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, entry *models.BlacklistedToken) error {

	query :=
		`INSERT INTO token_blacklist (token, expires_at, user_id, reason)
         VALUES ($1, $2, $3, $4)
         ON CONFLICT (token) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query, entry.Token, entry.ExpiresAt, entry.UserID, entry.Reason)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, token string) (bool, error) {

	query := `SELECT EXISTS (SELECT 1 FROM token_blacklist WHERE token = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error) {

	query := `DELETE FROM token_blacklist WHERE expires_at < $1`

	res, err := r.db.ExecContext(ctx, query, t)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return deleted, nil
}
