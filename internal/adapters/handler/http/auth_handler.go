package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

const accessTokenMaxAge = 8 * time.Hour

type AuthHandler struct {
	authService    ports.AuthService
	cookieDomain   string
	cookieSecure   bool
	cookieSameSite http.SameSite
	logger         *slog.Logger
}

func NewAuthHandler(authService ports.AuthService, cookieDomain string, cookieSecure bool, logger *slog.Logger) *AuthHandler {
	sameSite := http.SameSiteLaxMode
	if cookieSecure {
		sameSite = http.SameSiteNoneMode
	}
	return &AuthHandler{
		authService:    authService,
		cookieDomain:   cookieDomain,
		cookieSecure:   cookieSecure,
		cookieSameSite: sameSite,
		logger:         resolveLogger(logger),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUser struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	h.setAccessTokenCookie(w, token)
	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: user.ID.String(), Name: user.Name, Role: user.Role},
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: accessTokenCookie, MaxAge: -1, Path: "/", Domain: h.cookieDomain})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) setAccessTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: h.cookieSameSite,
		MaxAge:   int(accessTokenMaxAge.Seconds()),
	})
}
