package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ZeroColaa/authkeep/internal/common"
)

// errorResponse is the uniform error body returned by every endpoint and
// middleware rejection.
type errorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Status: status, Code: code, Message: message})
}

// writeServiceError maps a service-layer error onto an HTTP status and a
// stable machine-readable code. Unknown errors collapse to 500 without
// leaking internals.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusBadRequest, "DUPLICATE_EMAIL", "email is already registered")
	case errors.Is(err, common.ErrorInvalidRole):
		writeError(w, http.StatusBadRequest, "INVALID_ROLE", "unknown user role")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusBadRequest, "NOT_FOUND", "no such user")
	case errors.Is(err, common.ErrorInvalidLoginPassword):
		writeError(w, http.StatusUnauthorized, "BAD_CREDENTIALS", "invalid email or password")
	case errors.Is(err, common.ErrorInvalidAuthHeader):
		writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "missing or malformed bearer token")
	case errors.Is(err, common.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "ACCESS_EXPIRED", "access token has expired")
	case errors.Is(err, common.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "token is invalid")
	case errors.Is(err, common.ErrTokenRevoked):
		writeError(w, http.StatusUnauthorized, "TOKEN_REVOKED", "token has been revoked")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		writeError(w, http.StatusUnauthorized, "REFRESH_EXPIRED", "refresh token has expired")
	case errors.Is(err, common.ErrRefreshTokenMissing):
		writeError(w, http.StatusUnauthorized, "REFRESH_MISSING", "no refresh token on record")
	case errors.Is(err, common.ErrRefreshTokenMismatch):
		writeError(w, http.StatusUnauthorized, "REFRESH_MISMATCH", "refresh token does not match the stored one")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "insufficient privileges")
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
