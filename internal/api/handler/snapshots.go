package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/quickbooks"
	"github.com/dazos/cfo-copilot-api/infrastructure/repository"
	"github.com/dazos/cfo-copilot-api/pkg/apiErrors"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

func GetLatestSheetSnapshot(repo repository.SheetSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rangeName := r.URL.Query().Get("range_name")
		if rangeName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "range_name query parameter is required", nil)
			return
		}

		snapshot, err := repo.GetLatestByRange(rangeName)
		if err != nil {
			logger.WithField("error", err.Error()).Error("snapshots: failed to load sheet snapshot")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if snapshot == nil {
			writeJSON(w, logger, map[string]any{
				"range_name": rangeName,
				"as_of":      nil,
				"data":       nil,
				"message":    "No snapshot yet. Run POST /api/sync/google-sheets first.",
			})
			return
		}

		var data any
		if len(snapshot.Data) > 0 {
			if err := json.Unmarshal(snapshot.Data, &data); err != nil {
				logger.WithField("error", err.Error()).Error("snapshots: stored sheet snapshot is not valid JSON")
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, logger, map[string]any{
			"range_name": snapshot.RangeName,
			"as_of":      snapshot.AsOf.Format(time.RFC3339),
			"data":       data,
		})
	})
}

func GetQuickBooksReport(repo repository.QuickBooksSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		reportType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if !quickbooks.IsValidReportType(reportType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"report_type must be one of: "+strings.Join(quickbooks.ReportTypes, ", "), nil)
			return
		}

		snapshot, err := repo.GetLatest(reportType)
		if err != nil {
			logger.WithField("error", err.Error()).Error("snapshots: failed to load quickbooks report")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if snapshot == nil {
			writeJSON(w, logger, map[string]any{
				"report_type": reportType,
				"as_of":       nil,
				"data":        nil,
				"message":     "No snapshot yet. Run POST /api/sync/quickbooks first.",
			})
			return
		}

		var data any
		if len(snapshot.Data) > 0 {
			if err := json.Unmarshal(snapshot.Data, &data); err != nil {
				logger.WithField("error", err.Error()).Error("snapshots: stored quickbooks report is not valid JSON")
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, logger, map[string]any{
			"report_type": snapshot.ReportType,
			"as_of":       snapshot.AsOf.Format(time.RFC3339),
			"data":        data,
		})
	})
}

// ListEODSnapshotDates reports which business days have an end-of-day capture
func ListEODSnapshotDates(repo repository.EODSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dates, err := repo.ListDates()
		if err != nil {
			logger.WithField("error", err.Error()).Error("snapshots: failed to list snapshot dates")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		formatted := make([]string, 0, len(dates))
		for _, d := range dates {
			formatted = append(formatted, d.Format(time.DateOnly))
		}

		writeJSON(w, logger, map[string]any{"dates": formatted})
	})
}
