// Package common contains shared constants and sentinel errors used across
// authkeep components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"

// RefreshTokenHeaderName is the HTTP header carrying the refresh token on
// reissue requests.
const RefreshTokenHeaderName = "Refresh-Token"

// BearerPrefix is the scheme prefix attached to access tokens returned to
// clients and stripped before verification.
const BearerPrefix = "Bearer "
