// Package httpapi exposes the authentication service over HTTP. Every
// request passes through the authentication gate, which resolves a bearer
// token into a Principal when one is presented; individual routes then
// decide whether a principal is required.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/ZeroColaa/authkeep/internal/logging"
	"github.com/ZeroColaa/authkeep/internal/server/repositories/blacklist"
	"github.com/ZeroColaa/authkeep/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// HTTPServer serves the authentication endpoints.
type HTTPServer struct {
	address   string
	logger    logging.Logger
	auth      *services.AuthService
	blacklist blacklist.Repository
	jwtSecret []byte
}

// NewHTTPServer creates a server listening on address. The blacklist
// repository is consulted by the authentication gate on every request
// carrying a bearer token.
func NewHTTPServer(address string, logger logging.Logger, auth *services.AuthService, bl blacklist.Repository, jwtSecret []byte) *HTTPServer {
	return &HTTPServer{
		address:   address,
		logger:    logger.With("component", "httpapi"),
		auth:      auth,
		blacklist: bl,
		jwtSecret: jwtSecret,
	}
}

// Handler builds the full route table with middleware applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/signup", s.handleSignUp)
	mux.HandleFunc("POST /auth/signin", s.handleSignIn)
	mux.HandleFunc("POST /auth/signout", s.handleSignOut)
	mux.HandleFunc("POST /reissue", s.handleReissue)

	mux.Handle("POST /admin/tokens/revoke",
		s.adminOnly(s.auditAdmin(http.HandlerFunc(s.handleAdminRevoke))))

	return s.authenticate(mux)
}

// Run starts the server and blocks until ctx is cancelled, then shuts the
// server down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
