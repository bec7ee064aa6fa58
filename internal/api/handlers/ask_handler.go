package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
)

const maxAskBodyBytes = 16 << 10

// QuestionAnswerer answers a natural-language question
type QuestionAnswerer interface {
	Ask(ctx context.Context, question string) (*entities.AskResult, error)
}

// AskHandler handles natural-language questions
type AskHandler struct {
	answerer QuestionAnswerer
}

// NewAskHandler creates a new ask handler
func NewAskHandler(answerer QuestionAnswerer) *AskHandler {
	return &AskHandler{answerer: answerer}
}

// AskRequest is the body of POST /api/ask
type AskRequest struct {
	Question string `json:"question"`
}

// Ask handles POST /api/ask
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAskBodyBytes)).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.answerer.Ask(r.Context(), req.Question)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
