package httpapi

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ZeroColaa/authkeep/internal/common"
	"github.com/ZeroColaa/authkeep/internal/server/auth"
)

// authenticate is the authentication gate. It inspects the Authorization
// header and ends in one of four states:
//
//   - no usable bearer credential: the request proceeds anonymously
//   - the token is blacklisted: 401 before any signature check
//   - the token is expired or invalid: 401
//   - the token verifies: a Principal is attached to the request context
//
// Unexpected failures (for example a blacklist lookup error) are logged
// and the request proceeds anonymously; protected routes still reject it.
func (s *HTTPServer) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ExtractBearer(r.Header.Get(common.AuthorizationHeaderName))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		revoked, err := s.blacklist.Exists(r.Context(), token)
		if err != nil {
			s.logger.Error(r.Context(), "blacklist lookup failed", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if revoked {
			writeError(w, http.StatusUnauthorized, "TOKEN_REVOKED", "token has been revoked")
			return
		}

		claims, err := auth.ExtractClaims(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "ACCESS_EXPIRED", "access token has expired")
			} else {
				writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "token is invalid")
			}
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			s.logger.Warn(r.Context(), "token subject is not numeric", "subject", claims.Subject)
			next.ServeHTTP(w, r)
			return
		}

		p := &Principal{ID: userID, Email: claims.Email, Role: claims.UserRole}
		next.ServeHTTP(w, r.WithContext(contextWithPrincipal(r.Context(), p)))
	})
}

// adminOnly rejects requests whose principal is absent or not an admin.
func (s *HTTPServer) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		if p.Role != "ADMIN" {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type recordingResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (rw *recordingResponseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *recordingResponseWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.ResponseWriter.Write(b)
}

// auditAdmin logs who called a privileged endpoint, with the request and
// response bodies, for after-the-fact review.
func (s *HTTPServer) auditAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody []byte
		if r.Body != nil {
			reqBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		var userID int64
		if p, ok := PrincipalFromContext(r.Context()); ok {
			userID = p.ID
		}

		rw := &recordingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rw, r)

		s.logger.Info(r.Context(), "admin api call",
			"userId", userID,
			"method", r.Method,
			"uri", r.URL.RequestURI(),
			"status", rw.status,
			"requestBody", string(reqBody),
			"responseBody", rw.body.String(),
			"duration", time.Since(start),
		)
	})
}
