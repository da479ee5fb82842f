package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type CriterionHandler struct {
	service ports.CriterionService
	logger  *slog.Logger
}

func NewCriterionHandler(service ports.CriterionService, logger *slog.Logger) *CriterionHandler {
	return &CriterionHandler{
		service: service,
		logger:  resolveLogger(logger),
	}
}

type createCriterionRequest struct {
	Label   string               `json:"label"`
	Kind    domain.CriterionKind `json:"type"`
	Min     *float64             `json:"numericMin"`
	Max     *float64             `json:"numericMax"`
	Options []string             `json:"options"`
	Weight  *float64             `json:"weight"`
}

func (h *CriterionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCriterionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	criterion, err := h.service.Create(r.Context(), ports.CreateCriterionInput{
		Label:   req.Label,
		Kind:    req.Kind,
		Min:     req.Min,
		Max:     req.Max,
		Options: req.Options,
		Weight:  req.Weight,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, criterion)
}

func (h *CriterionHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, criteria)
}

func (h *CriterionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "criterion removed"})
}
