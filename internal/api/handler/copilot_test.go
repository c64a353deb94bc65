package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/pkg/apiErrors"
)

type stubCopilotService struct {
	response *domain.CopilotResponse
	err      error
	asked    string
}

func (s *stubCopilotService) Answer(question string) (*domain.CopilotResponse, error) {
	s.asked = question
	return s.response, s.err
}

func TestAskCopilot(t *testing.T) {
	service := &stubCopilotService{response: &domain.CopilotResponse{
		Answer:  "Total ARR is $5,406.60 across 2 accounts with open renewals.",
		Sources: []string{"Customer overview (open renewals)"},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/copilot",
		strings.NewReader(`{"question":"  What's our total ARR?  "}`))
	rec := httptest.NewRecorder()

	AskCopilot(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "What's our total ARR?", service.asked)

	var response domain.CopilotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, service.response.Answer, response.Answer)
	assert.Equal(t, service.response.Sources, response.Sources)
}

func TestAskCopilotMissingQuestion(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/copilot", strings.NewReader(`{"question":"   "}`))
	rec := httptest.NewRecorder()

	AskCopilot(&stubCopilotService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
}

func TestAskCopilotMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/copilot", strings.NewReader(`{"question":`))
	rec := httptest.NewRecorder()

	AskCopilot(&stubCopilotService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
}

func TestAskCopilotServiceFailure(t *testing.T) {
	service := &stubCopilotService{err: errors.New("db down")}

	req := httptest.NewRequest(http.MethodPost, "/api/copilot", strings.NewReader(`{"question":"total arr"}`))
	rec := httptest.NewRecorder()

	AskCopilot(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
