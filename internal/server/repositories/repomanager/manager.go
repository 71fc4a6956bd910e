package repomanager

import (
	"context"
	"database/sql"

	"github.com/ZeroColaa/authkeep/internal/dbx"
	"github.com/ZeroColaa/authkeep/internal/server/repositories/blacklist"
	"github.com/ZeroColaa/authkeep/internal/server/repositories/refreshtokens"
	"github.com/ZeroColaa/authkeep/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Blacklist(db dbx.DBTX) blacklist.Repository
}

// WithBlacklist wraps a manager so it vends the given blacklist repository
// regardless of the transaction handle. Used for blacklist backends that
// live outside the relational store (Redis); revocation writes through such
// a backend do not join the surrounding SQL transaction.
func WithBlacklist(m RepositoryManager, repo blacklist.Repository) RepositoryManager {
	return &blacklistOverride{RepositoryManager: m, repo: repo}
}

type blacklistOverride struct {
	RepositoryManager
	repo blacklist.Repository
}

func (m *blacklistOverride) Blacklist(db dbx.DBTX) blacklist.Repository {
	return m.repo
}
