package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dazos/cfo-copilot-api/internal/usecases/reporting"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

const (
	defaultExamplesLimit = 10
	maxExamplesLimit     = 50
)

func GetDashboardKPI(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kpi, err := service.DashboardKPI()
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to compute KPI")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, kpi)
	})
}

// GetARRExamples splits renewal ARR into open vs closed-won buckets with
// sample opportunities. limit caps the examples per bucket.
func GetARRExamples(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := parseLimit(r.URL.Query().Get("limit"), defaultExamplesLimit, maxExamplesLimit)

		split, err := service.RenewalARRSplit(limit)
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to compute ARR examples")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, split)
	})
}

func GetARRByAccount(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summaries, totalARR, err := service.ARRByAccount()
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to compute ARR by account")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, map[string]any{
			"accounts":  summaries,
			"total_arr": totalARR,
		})
	})
}

func GetARRByAccountProduct(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.ARRByAccountProduct()
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to compute ARR by account and product")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, report)
	})
}

// parseLimit parses a limit query parameter, falling back to def when absent
// or invalid and clamping to max
func parseLimit(raw string, def, max int) int {
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return def
	}
	if max > 0 && limit > max {
		return max
	}
	return limit
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithField("error", err.Error()).Error("failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
