package models

import (
	"strings"
	"time"

	"github.com/ZeroColaa/authkeep/internal/common"
)

// BlacklistReason classifies why an access token was blacklisted.
type BlacklistReason string

const (
	// BlacklistReasonLogout marks a token retired by a normal signout.
	BlacklistReasonLogout BlacklistReason = "LOGOUT"
	// BlacklistReasonCompromised marks a token force-revoked by an
	// administrator on suspected theft.
	BlacklistReasonCompromised BlacklistReason = "COMPROMISED"
	// BlacklistReasonPasswordChanged marks tokens invalidated by a
	// password change.
	BlacklistReasonPasswordChanged BlacklistReason = "PASSWORD_CHANGED"
	// BlacklistReasonDuplicateLogin marks a token rejected because of a
	// concurrent login.
	BlacklistReasonDuplicateLogin BlacklistReason = "DUPLICATE_LOGIN"
)

// ParseBlacklistReason converts a request-supplied reason string into a
// BlacklistReason. Matching is case-insensitive; unknown values yield
// ErrorInvalidRevocationReason.
func ParseBlacklistReason(s string) (BlacklistReason, error) {
	switch strings.ToUpper(s) {
	case string(BlacklistReasonLogout):
		return BlacklistReasonLogout, nil
	case string(BlacklistReasonCompromised):
		return BlacklistReasonCompromised, nil
	case string(BlacklistReasonPasswordChanged):
		return BlacklistReasonPasswordChanged, nil
	case string(BlacklistReasonDuplicateLogin):
		return BlacklistReasonDuplicateLogin, nil
	default:
		return "", common.ErrorInvalidRevocationReason
	}
}

// BlacklistedToken is an append-only denial-list row keyed by the exact
// access token string. ExpiresAt is copied from the token's own expiry so
// the row can be purged once the token would have died anyway.
type BlacklistedToken struct {
	Token     string
	ExpiresAt time.Time
	UserID    int64
	Reason    BlacklistReason
}
