package models

import "time"

// RefreshToken is the single stored refresh credential for a user. UserID is
// the primary key, so at most one row per user can exist; the row is
// overwritten in place on every successful signin or reissue.
type RefreshToken struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}
