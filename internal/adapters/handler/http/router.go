package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Vote      *VoteHandler
	Results   *ResultsHandler
	Criterion *CriterionHandler
	Candidate *CandidateHandler
}

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

func NewHandler(h Handlers, authService ports.AuthService, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	})

	authenticated := AuthMiddleware(authService, cfg.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Get("/public/criteria", h.Criterion.List)
		r.Get("/results/top", h.Results.Top)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/me", h.User.GetMe)
			r.Post("/vote", h.Vote.Submit)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticated)
			r.Use(RequireAdmin)

			r.Post("/criterion", h.Criterion.Create)
			r.Post("/criteria", h.Criterion.Create)
			r.Get("/criteria", h.Criterion.List)
			r.Delete("/criteria/{id}", h.Criterion.Delete)
			r.Delete("/criterion/{id}", h.Criterion.Delete)

			r.Post("/candidate", h.Candidate.Create)
			r.Post("/candidates", h.Candidate.Create)
			r.Get("/candidates", h.Candidate.List)
			r.Delete("/candidates/{id}", h.Candidate.Delete)
			r.Delete("/candidate/{id}", h.Candidate.Delete)

			r.Post("/judge", h.User.CreateJudge)
			r.Get("/judges", h.User.ListJudges)
			r.Delete("/judge/{id}", h.User.DeleteJudge)
		})
	})

	return r
}
