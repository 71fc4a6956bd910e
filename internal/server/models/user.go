// Package models contains the server-side data model for users and token
// lifecycle state.
package models

import (
	"strings"
	"time"

	"github.com/ZeroColaa/authkeep/internal/common"
)

// UserRole enumerates the roles a user can hold.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// ParseUserRole converts a request-supplied role string into a UserRole.
// Matching is case-insensitive; unknown values yield ErrorInvalidRole.
func ParseUserRole(s string) (UserRole, error) {
	switch strings.ToUpper(s) {
	case string(UserRoleUser):
		return UserRoleUser, nil
	case string(UserRoleAdmin):
		return UserRoleAdmin, nil
	default:
		return "", common.ErrorInvalidRole
	}
}

// User is an immutable identity row. Password holds the bcrypt hash, never
// the plain text.
type User struct {
	ID        int64
	Email     string
	Password  string
	UserRole  UserRole
	CreatedAt time.Time
}
