package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/recipe-box/internal/domain"
	"github.com/msomdec/recipe-box/internal/service"
)

// AuthHandler handles token issuance: login and refresh.
type AuthHandler struct {
	tokens *service.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// HandleLogin exchanges credentials for a signed auth token.
// POST /auth/login
// Request:  {"username":"...","password":"..."}
// Response: {"authToken":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing username or password in request body")
		return
	}

	token, err := h.tokens.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		slog.Error("login", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"authToken": token})
}

// HandleRefresh exchanges a valid, unexpired token for a fresh one.
// POST /auth/refresh
// Request:  Authorization: Bearer <token>
// Response: {"authToken":"..."}
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	raw, ok := bearerToken(r)
	if !ok {
		slog.Debug("refresh without bearer token")
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := h.tokens.Refresh(raw)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		slog.Error("refresh token", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"authToken": token})
}
