// Package common defines shared constants and sentinel errors used across
// the authkeep server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors.
	ErrorInvalidLoginPassword    = errors.New("invalid login/password")
	ErrorInvalidRole             = errors.New("invalid user role")
	ErrorInvalidRevocationReason = errors.New("invalid revocation reason")
	ErrorInvalidAuthHeader       = errors.New("invalid auth header format")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenRevoked         = errors.New("token revoked")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrRefreshTokenMissing  = errors.New("no stored refresh token")
	ErrRefreshTokenMismatch = errors.New("refresh token mismatch")
)
