package syncing

import (
	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/quickbooks"
	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

// SyncQuickBooks fetches the P&L, Balance Sheet and Cash Flow reports and
// stores each as a dated snapshot. The first failing report aborts the cycle.
func (s *service) SyncQuickBooks() *domain.QuickBooksSyncResult {
	if !s.quickBooks.IsConfigured() {
		return &domain.QuickBooksSyncResult{
			OK:    false,
			Error: "QuickBooks not configured. Set QB_CLIENT_ID, QB_CLIENT_SECRET, QB_REALM_ID, QB_REFRESH_TOKEN in .env.",
		}
	}

	synced := make([]string, 0, len(quickbooks.ReportTypes))
	for _, reportType := range quickbooks.ReportTypes {
		data, err := s.quickBooks.FetchReport(reportType)
		if err != nil {
			log.L.WithError(err).WithFields(log.Fields{"sync_report": reportType}).Error("quickbooks report fetch failed")
			return &domain.QuickBooksSyncResult{OK: false, Error: "QuickBooks " + reportType + " failed: " + err.Error()}
		}

		snapshot := &domain.QuickBooksReportSnapshot{
			ReportType: reportType,
			AsOf:       s.now().UTC(),
			Data:       data,
		}
		if err := s.qbRepo.Save(snapshot); err != nil {
			log.L.WithError(err).Error("quickbooks snapshot save failed")
			return &domain.QuickBooksSyncResult{OK: false, Error: err.Error()}
		}
		synced = append(synced, reportType)
	}

	return &domain.QuickBooksSyncResult{
		OK:      true,
		Synced:  synced,
		Message: "P&L, Balance Sheet, and Cash Flow synced from QuickBooks.",
	}
}
