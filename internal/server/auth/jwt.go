// Package auth implements the signed-token codec: minting access and
// refresh tokens, verifying signature and expiry, and extracting claims.
package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/ZeroColaa/authkeep/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims includes the registered claims plus the custom email and role
// claims carried by access tokens. Refresh tokens carry registered claims
// only.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	UserRole string `json:"userRole,omitempty"`
}

var hs256Only = jwt.WithValidMethods([]string{"HS256"})

// CreateAccessToken mints a short-lived access token for the user and
// returns it with the "Bearer " prefix already attached, the form in which
// it is handed to clients.
func CreateAccessToken(userID int64, email string, role string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Email:    email,
		UserRole: role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return common.BearerPrefix + tokenString, nil
}

// CreateRefreshToken mints an opaque refresh token. It deliberately carries
// no subject: correlation to a user is kept only in the refresh_tokens row.
// The jti claim makes two tokens minted in the same second distinct.
func CreateRefreshToken(secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
	})

	return token.SignedString(secretKey)
}

// ValidateToken verifies signature and expiry only, with no store lookup.
// It returns ErrTokenExpired for expired tokens and ErrInvalidToken for
// malformed, unsupported, or tampered ones.
func ValidateToken(tokenString string, secretKey []byte) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, hs256Only)
	if err != nil {
		return classifyParseError(err)
	}
	if !token.Valid {
		return common.ErrInvalidToken
	}
	return nil
}

// ExtractClaims verifies the token and returns its claims.
func ExtractClaims(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, hs256Only)
	if err != nil {
		return nil, classifyParseError(err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// ExtractUserID returns the numeric subject of a verified token.
func ExtractUserID(tokenString string, secretKey []byte) (int64, error) {
	claims, err := ExtractClaims(tokenString, secretKey)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	return userID, nil
}

// GetExpiration returns the token's remaining lifetime. The signature is
// still verified, but expiry is not, so the result may be negative; callers
// must treat a non-positive value as expired.
func GetExpiration(tokenString string, secretKey []byte) (time.Duration, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, hs256Only, jwt.WithoutClaimsValidation())
	if err != nil {
		return 0, classifyParseError(err)
	}
	if claims.ExpiresAt == nil {
		return 0, common.ErrInvalidToken
	}

	return time.Until(claims.ExpiresAt.Time), nil
}

// ExtractBearer strips the "Bearer " prefix from an Authorization header
// value and returns the raw token.
func ExtractBearer(header string) (string, error) {
	if !strings.HasPrefix(header, common.BearerPrefix) {
		return "", common.ErrorInvalidAuthHeader
	}
	token := header[len(common.BearerPrefix):]
	if token == "" {
		return "", common.ErrorInvalidAuthHeader
	}
	return token, nil
}

func classifyParseError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return common.ErrTokenExpired
	}
	return common.ErrInvalidToken
}
