package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
	logger  *slog.Logger
}

func NewVoteHandler(service ports.VoteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		logger:  resolveLogger(logger),
	}
}

type answerRequest struct {
	CriterionID string             `json:"criterionId"`
	Value       domain.AnswerValue `json:"value"`
}

type voteRequest struct {
	CandidateNumber flexibleInt     `json:"candidateNumber"`
	Answers         []answerRequest `json:"answers"`
}

func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	judgeID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	var req voteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	answers := make([]ports.AnswerInput, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, ports.AnswerInput{CriterionID: a.CriterionID, Value: a.Value})
	}

	_, err := h.service.Submit(r.Context(), ports.SubmitVoteInput{
		CandidateNumber: req.CandidateNumber.Ptr(),
		JudgeID:         judgeID,
		Answers:         answers,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "vote registered"})
}
