package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/internal/usecases/copilot"
	"github.com/dazos/cfo-copilot-api/pkg/apiErrors"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

// AskCopilot answers a natural-language question about recurring revenue.
// Every answer carries the data sources it was computed from.
func AskCopilot(service copilot.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.CopilotRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		question := strings.TrimSpace(request.Question)
		if question == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "question is required", nil)
			return
		}

		response, err := service.Answer(question)
		if err != nil {
			logger.WithField("error", err.Error()).Error("copilot: failed to answer question")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, response)
	})
}
