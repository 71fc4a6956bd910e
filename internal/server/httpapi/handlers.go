package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ZeroColaa/authkeep/internal/common"
	"github.com/ZeroColaa/authkeep/internal/server/models"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserRole string `json:"userRole"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type revokeRequest struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Reason string `json:"reason"`
}

// tokenResponse carries a freshly minted pair. The access token already
// includes the "Bearer " prefix.
type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		return false
	}
	return true
}

func (s *HTTPServer) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "email and password are required")
		return
	}

	pair, err := s.auth.SignUp(r.Context(), req.Email, req.Password, req.UserRole)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *HTTPServer) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "email and password are required")
		return
	}

	pair, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *HTTPServer) handleSignOut(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeServiceError(w, common.ErrorUnauthorized)
		return
	}

	header := r.Header.Get(common.AuthorizationHeaderName)
	if err := s.auth.SignOut(r.Context(), p.ID, header); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *HTTPServer) handleReissue(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "userId query parameter is required")
		return
	}

	refreshToken := r.Header.Get(common.RefreshTokenHeaderName)
	if refreshToken == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Refresh-Token header is required")
		return
	}

	pair, err := s.auth.Reissue(r.Context(), userID, refreshToken)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *HTTPServer) handleAdminRevoke(w http.ResponseWriter, r *http.Request) {
	var req revokeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "token is required")
		return
	}

	reason := models.BlacklistReasonCompromised
	if req.Reason != "" {
		parsed, err := models.ParseBlacklistReason(req.Reason)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "unknown revocation reason")
			return
		}
		reason = parsed
	}

	if err := s.auth.ForceRevoke(r.Context(), req.Token, req.UserID, reason); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
