package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/ZeroColaa/authkeep/internal/common"
)

func TestCreateAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	bearer, err := CreateAccessToken(42, "a@x.com", "USER", secret, time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}
	if !strings.HasPrefix(bearer, common.BearerPrefix) {
		t.Fatalf("expected Bearer prefix, got %q", bearer)
	}

	raw, err := ExtractBearer(bearer)
	if err != nil {
		t.Fatalf("ExtractBearer error: %v", err)
	}

	claims, err := ExtractClaims(raw, secret)
	if err != nil {
		t.Fatalf("ExtractClaims error: %v", err)
	}
	if claims.Subject != "42" || claims.Email != "a@x.com" || claims.UserRole != "USER" {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	userID, err := ExtractUserID(raw, secret)
	if err != nil {
		t.Fatalf("ExtractUserID error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", userID)
	}
}

func TestExtractClaims_WrongSecret(t *testing.T) {
	t.Parallel()

	bearer, err := CreateAccessToken(1, "a@x.com", "USER", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}
	raw, _ := ExtractBearer(bearer)

	_, err = ExtractClaims(raw, []byte("wrong-secret"))
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_ExpiredVsInvalid(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	bearer, err := CreateAccessToken(1, "a@x.com", "USER", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}
	raw, _ := ExtractBearer(bearer)

	if err := ValidateToken(raw, secret); err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}

	if err := ValidateToken("not.a.jwt", secret); err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestCreateRefreshToken_DistinctWithinSameSecond(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	a, err := CreateRefreshToken(secret, time.Hour)
	if err != nil {
		t.Fatalf("CreateRefreshToken error: %v", err)
	}
	b, err := CreateRefreshToken(secret, time.Hour)
	if err != nil {
		t.Fatalf("CreateRefreshToken error: %v", err)
	}
	if a == b {
		t.Fatalf("two refresh tokens minted back to back are identical")
	}

	if err := ValidateToken(a, secret); err != nil {
		t.Fatalf("refresh token does not validate: %v", err)
	}
}

func TestGetExpiration_NegativeWhenExpired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	bearer, err := CreateAccessToken(1, "a@x.com", "USER", secret, -1*time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}
	raw, _ := ExtractBearer(bearer)

	remaining, err := GetExpiration(raw, secret)
	if err != nil {
		t.Fatalf("GetExpiration error: %v", err)
	}
	if remaining > 0 {
		t.Fatalf("expected non-positive remaining ttl, got %v", remaining)
	}
}

func TestGetExpiration_RemainingTtl(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	bearer, err := CreateAccessToken(1, "a@x.com", "USER", secret, 15*time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}
	raw, _ := ExtractBearer(bearer)

	remaining, err := GetExpiration(raw, secret)
	if err != nil {
		t.Fatalf("GetExpiration error: %v", err)
	}
	if remaining <= 14*time.Minute || remaining > 15*time.Minute {
		t.Fatalf("unexpected remaining ttl: %v", remaining)
	}
}

func TestExtractBearer_BadHeader(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"", "Bearer ", "Token abc", "bearer abc"} {
		if _, err := ExtractBearer(header); err != common.ErrorInvalidAuthHeader {
			t.Fatalf("header %q: expected common.ErrorInvalidAuthHeader, got %v", header, err)
		}
	}
}
