package blacklist

import (
	"context"
	"testing"
	"time"

	"github.com/ZeroColaa/authkeep/internal/server/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepository(client), mr
}

func TestRedisAddAndExists(t *testing.T) {
	repo, _ := newRedisRepo(t)
	ctx := context.Background()

	entry := &models.BlacklistedToken{
		Token:     "tok123",
		ExpiresAt: time.Now().Add(10 * time.Minute),
		UserID:    1,
		Reason:    models.BlacklistReasonLogout,
	}
	if err := repo.Add(ctx, entry); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	revoked, err := repo.Exists(ctx, "tok123")
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !revoked {
		t.Fatal("expected token to be blacklisted")
	}

	revoked, err = repo.Exists(ctx, "other")
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if revoked {
		t.Fatal("unexpected blacklist hit for unknown token")
	}
}

func TestRedisAdd_ExpiredEntryIsDropped(t *testing.T) {
	repo, _ := newRedisRepo(t)
	ctx := context.Background()

	entry := &models.BlacklistedToken{
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
		UserID:    1,
		Reason:    models.BlacklistReasonLogout,
	}
	if err := repo.Add(ctx, entry); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	revoked, err := repo.Exists(ctx, "stale")
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if revoked {
		t.Fatal("token past its own expiry should not be stored")
	}
}

func TestRedisEntryExpiresWithTokenTTL(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()

	entry := &models.BlacklistedToken{
		Token:     "tok123",
		ExpiresAt: time.Now().Add(time.Minute),
		UserID:    1,
		Reason:    models.BlacklistReasonPasswordChanged,
	}
	if err := repo.Add(ctx, entry); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	revoked, err := repo.Exists(ctx, "tok123")
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if revoked {
		t.Fatal("entry should have expired with the token")
	}
}
