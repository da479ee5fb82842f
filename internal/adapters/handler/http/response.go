package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{domain.ErrDuplicateVote, http.StatusConflict, "duplicate_vote"},
	{domain.ErrCandidateNotFound, http.StatusNotFound, "candidate_not_found"},
	{domain.ErrEmptyAnswers, http.StatusBadRequest, "empty_answers"},
	{domain.ErrUnknownCriterion, http.StatusBadRequest, "unknown_criterion"},
	{domain.ErrInvalidNumericValue, http.StatusBadRequest, "invalid_numeric_value"},
	{domain.ErrOutOfRange, http.StatusBadRequest, "out_of_range"},
	{domain.ErrInvalidOption, http.StatusBadRequest, "invalid_option"},
	{domain.ErrInvalidCriterion, http.StatusBadRequest, "invalid_request"},
	{domain.ErrInvalidCandidate, http.StatusBadRequest, "invalid_request"},
	{domain.ErrInvalidUser, http.StatusBadRequest, "invalid_request"},
	{domain.ErrCriterionNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrUserNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrCandidateNumberTaken, http.StatusConflict, "conflict"},
	{domain.ErrEmailTaken, http.StatusConflict, "conflict"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
}

// writeServiceError maps a service error onto its HTTP status and error
// code. Anything unrecognised is logged and reported as an internal error.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			writeError(w, m.status, m.code, err.Error())
			return
		}
	}

	logger.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, "internal", domain.ErrInternal.Error())
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
