package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/dazos/cfo-copilot-api/internal/scheduler"
	"github.com/dazos/cfo-copilot-api/pkg/apiErrors"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

// Cron job types accepted by the manual trigger endpoint
const (
	CronJobTypeSalesforce  = "salesforce"
	CronJobTypeEODSnapshot = "eod-snapshot"
	CronJobTypeAll         = "all"
)

// CronJobServices holds the background services exposed through the cron
// endpoints
type CronJobServices struct {
	SalesforceJobService *scheduler.SalesforceJobService
}

// RunCronJob triggers a background job outside its schedule
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		if services.SalesforceJobService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "salesforce job service not available", nil)
			return
		}

		switch cronType {
		case CronJobTypeSalesforce:
			services.SalesforceJobService.TriggerManualSync()

		case CronJobTypeEODSnapshot:
			services.SalesforceJobService.TriggerManualSnapshot()

		case CronJobTypeAll:
			services.SalesforceJobService.TriggerManualSync()
			services.SalesforceJobService.TriggerManualSnapshot()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type. Accepted values: salesforce, eod-snapshot, all", nil)
			return
		}

		logger.Infof("cron: manual %s job triggered", cronType)

		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the background job state
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.SalesforceJobService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "salesforce job service not available", nil)
			return
		}

		status := map[string]any{
			"salesforce": services.SalesforceJobService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
