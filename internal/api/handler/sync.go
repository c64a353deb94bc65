package handler

import (
	"net/http"

	"github.com/dazos/cfo-copilot-api/internal/usecases/syncing"
	"github.com/dazos/cfo-copilot-api/pkg/apiErrors"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

// RunSalesforceSync bulk-replaces the local Salesforce tables from a fresh
// pull. Connector failures come back as {ok:false, error}, not HTTP errors.
func RunSalesforceSync(service syncing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("sync: salesforce sync requested")

		result := service.SyncSalesforce()

		logger.WithFields(log.Fields{
			"sync_id": result.SyncID,
			"sync_ok": result.OK,
		}).Info("sync: salesforce sync finished")

		writeJSON(w, logger, result)
	})
}

func RunGoogleSheetsSync(service syncing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rangeName := r.URL.Query().Get("range_name")
		if rangeName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "range_name query parameter is required", nil)
			return
		}

		result := service.SyncGoogleSheets(rangeName)

		logger.WithFields(log.Fields{
			"sync_range": rangeName,
			"sync_ok":    result.OK,
		}).Info("sync: google sheets sync finished")

		writeJSON(w, logger, result)
	})
}

func RunQuickBooksSync(service syncing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result := service.SyncQuickBooks()

		logger.WithField("sync_ok", result.OK).Info("sync: quickbooks sync finished")

		writeJSON(w, logger, result)
	})
}
