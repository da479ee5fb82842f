package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type ResultsHandler struct {
	service ports.ResultsService
	logger  *slog.Logger
}

func NewResultsHandler(service ports.ResultsService, logger *slog.Logger) *ResultsHandler {
	return &ResultsHandler{
		service: service,
		logger:  resolveLogger(logger),
	}
}

func (h *ResultsHandler) Top(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.ComputeResults(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
