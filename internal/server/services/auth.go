// Package services contains server-side business logic. This file implements
// AuthService, which handles signup, signin, signout, refresh-token reissue,
// and administrative revocation of access tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ZeroColaa/authkeep/internal/common"
	"github.com/ZeroColaa/authkeep/internal/dbx"
	"github.com/ZeroColaa/authkeep/internal/server/auth"
	"github.com/ZeroColaa/authkeep/internal/server/config"
	"github.com/ZeroColaa/authkeep/internal/server/models"
	"github.com/ZeroColaa/authkeep/internal/server/password"
	"github.com/ZeroColaa/authkeep/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token (Bearer-prefixed) and a
// long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService provides authentication-related operations:
// - SignUp / SignIn: create users, verify credentials, mint token pairs
// - SignOut: blacklist the access token and drop the refresh token
// - Reissue: rotate the stored refresh token and mint a new pair
// - ForceRevoke / InvalidateUserTokens: forced revocation
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories, the decoded
// signing key, and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, jwtSecret []byte, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    jwtSecret,
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// SignUp registers a new user and returns its first token pair. A duplicate
// email yields ErrorAlreadyExists.
func (s *AuthService) SignUp(ctx context.Context, email, plainPassword, role string) (*TokenPair, error) {

	userRole, err := models.ParseUserRole(role)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	exists, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	hash, err := password.Encode(plainPassword)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).Create(ctx, &models.User{
			Email:    email,
			Password: hash,
			UserRole: userRole,
		})
		if err != nil {
			return err
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, user, tx)
		return genErr
	}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, err
	}
	return pair, nil
}

// SignIn verifies the email/password pair and, on success, returns a new
// token pair, rotating the stored refresh token in place.
func (s *AuthService) SignIn(ctx context.Context, email, plainPassword string) (*TokenPair, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if !password.Matches(plainPassword, user.Password) {
		return nil, common.ErrorInvalidLoginPassword
	}

	return s.generateTokenPair(ctx, user, s.db)
}

// SignOut blacklists the presented access token for its remaining lifetime
// and deletes the user's refresh token. The token's embedded subject must
// match userID.
func (s *AuthService) SignOut(ctx context.Context, userID int64, bearerToken string) error {

	accessToken, err := auth.ExtractBearer(bearerToken)
	if err != nil {
		return err
	}

	tokenUserID, err := auth.ExtractUserID(accessToken, s.jwtSecret)
	if err != nil {
		return err
	}
	if tokenUserID != userID {
		return common.ErrorUnauthorized
	}

	remaining, err := auth.GetExpiration(accessToken, s.jwtSecret)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		entry := &models.BlacklistedToken{
			Token:     accessToken,
			ExpiresAt: time.Now().Add(remaining),
			UserID:    userID,
			Reason:    models.BlacklistReasonLogout,
		}
		if err := s.repomanager.Blacklist(tx).Add(ctx, entry); err != nil {
			return fmt.Errorf("error blacklisting token: %w", err)
		}
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, userID); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		return nil
	})
}

// Reissue validates the presented refresh token against the stored row for
// userID and, on success, mints a brand-new pair, overwriting the stored
// row. The presented token is thereby spent: a repeat call with it fails
// with ErrRefreshTokenMismatch.
func (s *AuthService) Reissue(ctx context.Context, userID int64, refreshToken string) (*TokenPair, error) {

	if err := auth.ValidateToken(refreshToken, s.jwtSecret); err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, common.ErrRefreshTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	stored, err := s.repomanager.RefreshTokens(s.db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrRefreshTokenMissing
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}

	if stored.Token != refreshToken {
		return nil, common.ErrRefreshTokenMismatch
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return s.generateTokenPair(ctx, user, s.db)
}

// ForceRevoke blacklists an access token on behalf of an administrator,
// typically with reason COMPROMISED on suspected theft. The token is
// accepted with or without the "Bearer " prefix, since admins paste it in
// the form the API returned it.
func (s *AuthService) ForceRevoke(ctx context.Context, accessToken string, userID int64, reason models.BlacklistReason) error {

	accessToken = strings.TrimPrefix(accessToken, common.BearerPrefix)

	remaining, err := auth.GetExpiration(accessToken, s.jwtSecret)
	if err != nil {
		return err
	}

	entry := &models.BlacklistedToken{
		Token:     accessToken,
		ExpiresAt: time.Now().Add(remaining),
		UserID:    userID,
		Reason:    reason,
	}
	if err := s.repomanager.Blacklist(s.db).Add(ctx, entry); err != nil {
		return fmt.Errorf("error blacklisting token: %w", err)
	}
	return nil
}

// InvalidateUserTokens drops the user's refresh token and blacklists the
// presented access token. Called on password change.
func (s *AuthService) InvalidateUserTokens(ctx context.Context, userID int64, accessToken string) error {

	remaining, err := auth.GetExpiration(accessToken, s.jwtSecret)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, userID); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		entry := &models.BlacklistedToken{
			Token:     accessToken,
			ExpiresAt: time.Now().Add(remaining),
			UserID:    userID,
			Reason:    models.BlacklistReasonPasswordChanged,
		}
		if err := s.repomanager.Blacklist(tx).Add(ctx, entry); err != nil {
			return fmt.Errorf("error blacklisting token: %w", err)
		}
		return nil
	})
}

// --- helpers below ---

func (s *AuthService) generateTokenPair(ctx context.Context, user *models.User, db dbx.DBTX) (*TokenPair, error) {
	access, err := auth.CreateAccessToken(user.ID, user.Email, string(user.UserRole), s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.CreateRefreshToken(s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	repo := s.repomanager.RefreshTokens(db)
	if err := repo.Upsert(ctx, user.ID, refresh, time.Now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
