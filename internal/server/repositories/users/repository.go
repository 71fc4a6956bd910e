// Package users declares the server-side repository contract for the user
// identity store.
package users

import (
	"context"

	"github.com/ZeroColaa/authkeep/internal/server/models"
)

// Repository defines operations for creating and looking up users.
type Repository interface {
	// Create persists a new user and returns it with the generated id.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user registered under email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// ExistsByEmail reports whether a user is registered under email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
