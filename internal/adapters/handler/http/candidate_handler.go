package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type CandidateHandler struct {
	service ports.CandidateService
	logger  *slog.Logger
}

func NewCandidateHandler(service ports.CandidateService, logger *slog.Logger) *CandidateHandler {
	return &CandidateHandler{
		service: service,
		logger:  resolveLogger(logger),
	}
}

type createCandidateRequest struct {
	Number flexibleInt `json:"number"`
	Name   string      `json:"name"`
}

func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid candidate number")
		return
	}

	candidate, err := h.service.Create(r.Context(), ports.CreateCandidateInput{
		Number: req.Number.Ptr(),
		Name:   req.Name,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, candidate)
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}

func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "candidate removed"})
}
