package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/costnavigator/internal/api/handlers"
	"github.com/zatekoja/costnavigator/internal/domain/entities"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
)

type MockQuestionAnswerer struct {
	mock.Mock
}

func (m *MockQuestionAnswerer) Ask(ctx context.Context, question string) (*entities.AskResult, error) {
	args := m.Called(ctx, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AskResult), args.Error(1)
}

func TestAskHandler_Ask(t *testing.T) {
	answerer := new(MockQuestionAnswerer)
	zip := "19104"
	code := 470
	answerer.On("Ask", mock.Anything, "cheapest drg 470 near 19104").Return(&entities.AskResult{
		Answer:        "Cheapest appears to be PENN PRESBYTERIAN with avg covered charges $20,000.",
		Intent:        entities.IntentCheapest,
		ProcedureCode: &code,
		Zip:           &zip,
		RadiusKm:      40,
		Limit:         5,
		Sort:          entities.SortByCost,
		Parser:        "rules",
		Results:       []entities.ProviderResult{{ProviderID: "390111"}},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question":"cheapest drg 470 near 19104"}`))
	w := httptest.NewRecorder()
	handlers.NewAskHandler(answerer).Ask(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "cheapest", body["intent"])
	assert.Equal(t, 470.0, body["drg_code"])
	assert.Nil(t, body["drg_text"])
	assert.Equal(t, "19104", body["zip"])
	assert.Equal(t, "rules", body["parser"])
	assert.Len(t, body["results"], 1)
	answerer.AssertExpectations(t)
}

func TestAskHandler_BadBody(t *testing.T) {
	answerer := new(MockQuestionAnswerer)

	w := httptest.NewRecorder()
	handlers.NewAskHandler(answerer).Ask(w, httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	answerer.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestAskHandler_EmptyQuestion(t *testing.T) {
	answerer := new(MockQuestionAnswerer)
	answerer.On("Ask", mock.Anything, "").Return(nil, apperrors.NewValidationError("question is required"))

	w := httptest.NewRecorder()
	handlers.NewAskHandler(answerer).Ask(w, httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"question is required"}`, w.Body.String())
}

func TestAskHandler_Cancelled(t *testing.T) {
	answerer := new(MockQuestionAnswerer)
	answerer.On("Ask", mock.Anything, "best rated near 10001").Return(nil, context.Canceled)

	w := httptest.NewRecorder()
	handlers.NewAskHandler(answerer).Ask(w, httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question":"best rated near 10001"}`)))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
