package handler

import (
	"net/http"

	"github.com/dazos/cfo-copilot-api/internal/usecases/exporting"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

func ExportARRToGoogleSheet(service exporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("export: ARR export to google sheet requested")

		result := service.ExportARRToGoogleSheet()

		logger.WithFields(log.Fields{
			"sync_ok":      result.OK,
			"rows_written": result.RowsWritten,
		}).Info("export: ARR export finished")

		writeJSON(w, logger, result)
	})
}
