// Package blacklist declares the repository contract for the access-token
// denial list.
package blacklist

import (
	"context"
	"time"

	"github.com/ZeroColaa/authkeep/internal/server/models"
)

// Repository defines operations over blacklisted access tokens. Rows are
// append-only: they are added on revocation and removed only by the expiry
// purge, never updated.
type Repository interface {
	// Add records the token as revoked until its stored expiry. Adding a
	// token that is already present is not an error.
	Add(ctx context.Context, entry *models.BlacklistedToken) error

	// Exists reports whether the exact token string has been revoked.
	// It runs on every authenticated request and must be a keyed lookup.
	Exists(ctx context.Context, token string) (bool, error)

	// DeleteExpiredBefore bulk-deletes entries whose stored expiry
	// precedes t and returns the number of entries removed.
	DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error)
}
