// Package refreshtokens declares the server-side repository contract for the
// single-row-per-user refresh token store.
package refreshtokens

import (
	"context"
	"time"

	"github.com/ZeroColaa/authkeep/internal/server/models"
)

// Repository defines operations for storing, rotating, and purging refresh
// tokens. All lookups are keyed by user id; comparing the stored token
// string against a presented one is the caller's job.
type Repository interface {
	// Get returns the stored refresh token row for userID, or
	// common.ErrorNotFound when the user has none.
	Get(ctx context.Context, userID int64) (*models.RefreshToken, error)

	// Upsert writes the refresh token row for userID, overwriting any
	// existing row in a single atomic statement. Concurrent upserts for
	// the same user resolve last-writer-wins; the loser's token simply
	// stops matching on the next reissue.
	Upsert(ctx context.Context, userID int64, token string, expiresAt time.Time) error

	// Delete removes the row for userID. Deleting a non-existent row is
	// not an error.
	Delete(ctx context.Context, userID int64) error

	// DeleteExpiredBefore bulk-deletes rows whose expiry precedes t and
	// returns the number of rows removed.
	DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error)
}
