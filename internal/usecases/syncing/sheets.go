package syncing

import (
	"encoding/json"

	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

// SyncGoogleSheets pulls one A1 range from the configured financial model
// sheet and stores it as a dated snapshot
func (s *service) SyncGoogleSheets(rangeName string) *domain.SheetSyncResult {
	if !s.googleSheets.IsConfigured() {
		return &domain.SheetSyncResult{
			OK:    false,
			Error: "Google Sheets not configured. Set GOOGLE_SHEET_ID and GOOGLE_APPLICATION_CREDENTIALS (or GOOGLE_SHEETS_CREDENTIALS_JSON) in .env.",
		}
	}

	values, err := s.googleSheets.ReadRange(rangeName)
	if err != nil {
		log.L.WithError(err).Error("google sheets read failed")
		return &domain.SheetSyncResult{OK: false, Error: err.Error()}
	}

	data, err := json.Marshal(values)
	if err != nil {
		return &domain.SheetSyncResult{OK: false, Error: err.Error()}
	}

	snapshot := &domain.SheetSnapshot{
		Source:    "google_sheets",
		RangeName: rangeName,
		AsOf:      s.now().UTC(),
		Data:      data,
	}
	if err := s.sheetRepo.Save(snapshot); err != nil {
		log.L.WithError(err).Error("sheet snapshot save failed")
		return &domain.SheetSyncResult{OK: false, Error: err.Error()}
	}

	return &domain.SheetSyncResult{
		OK:        true,
		RangeName: rangeName,
		Rows:      len(values),
		Message:   "Snapshot saved. Use GET /api/sheet-snapshots/latest?range_name=... to read it.",
	}
}
