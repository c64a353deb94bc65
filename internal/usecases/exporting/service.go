package exporting

import (
	"fmt"
	"time"

	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/googlesheets"
	"github.com/dazos/cfo-copilot-api/internal/config"
	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/internal/usecases/reporting"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

const createdSheetRange = "Sheet1!A1:Z200"

// Service pushes the ARR-by-account-product table to Google Sheets
type Service interface {
	ExportARRToGoogleSheet() *domain.ExportResult
}

type service struct {
	appConfig *config.Config
	reporter  reporting.Service
	sheets    googlesheets.GoogleSheetsIntegrator
	location  *time.Location
	now       func() time.Time
}

func NewService(
	appConfig *config.Config,
	reporter reporting.Service,
	sheets googlesheets.GoogleSheetsIntegrator,
	location *time.Location,
) Service {
	return &service{
		appConfig: appConfig,
		reporter:  reporter,
		sheets:    sheets,
		location:  location,
		now:       time.Now,
	}
}

// ExportARRToGoogleSheet creates a new timestamped spreadsheet each run and
// writes the full table into it. When creating fails (service accounts
// without Drive quota), it falls back to the configured existing sheet.
func (s *service) ExportARRToGoogleSheet() *domain.ExportResult {
	if !s.sheets.IsConfigured() {
		return &domain.ExportResult{
			OK:    false,
			Error: "Google Sheets not configured. Set GOOGLE_APPLICATION_CREDENTIALS (or GOOGLE_SHEETS_CREDENTIALS_JSON) in .env.",
		}
	}

	report, err := s.reporter.ARRByAccountProduct()
	if err != nil {
		return &domain.ExportResult{OK: false, Error: fmt.Sprintf("failed to build ARR report: %v", err)}
	}

	values := buildSheetValues(report)

	title := fmt.Sprintf("%s %s EST",
		s.appConfig.GoogleSheets.ExportSheetTitle,
		s.now().In(s.location).Format("2006-01-02 15:04"),
	)

	spreadsheetID, spreadsheetURL, createErr := s.sheets.CreateSpreadsheet(title)
	if createErr == nil {
		if err := s.sheets.UpdateRange(spreadsheetID, createdSheetRange, values); err != nil {
			return &domain.ExportResult{
				OK:    false,
				Error: fmt.Sprintf("Created sheet but failed to write data: %v", err),
			}
		}
		return &domain.ExportResult{OK: true, SpreadsheetURL: spreadsheetURL, RowsWritten: len(values)}
	}

	log.L.WithFields(log.Fields{"error": createErr.Error()}).Warn("spreadsheet create failed, falling back to configured sheet")

	sheetID := s.appConfig.GoogleSheets.SheetID
	if sheetID == "" {
		return &domain.ExportResult{
			OK:    false,
			Error: fmt.Sprintf("Could not create a spreadsheet (%v) and GOOGLE_SHEET_ID is not set for the fallback write.", createErr),
		}
	}

	if err := s.sheets.UpdateRange(sheetID, s.appConfig.GoogleSheets.ARRExportRange, values); err != nil {
		return &domain.ExportResult{
			OK:    false,
			Error: fmt.Sprintf("Failed to write to the configured sheet. Share it with the service account as Editor and use a tab that exists. %v", err),
		}
	}

	return &domain.ExportResult{
		OK:             true,
		SpreadsheetURL: fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", sheetID),
		RowsWritten:    len(values),
	}
}

// buildSheetValues lays the report out as header, one row per account, and a
// trailing total row. Product columns follow the report's column order.
func buildSheetValues(report *domain.ARRReport) [][]interface{} {
	header := make([]interface{}, 0, len(report.Products)+3)
	header = append(header, "Account", "Segment")
	for _, p := range report.Products {
		header = append(header, p)
	}
	header = append(header, "Total ARR")

	values := [][]interface{}{header}

	for _, row := range report.Rows {
		cells := make([]interface{}, 0, len(header))
		cells = append(cells, row.AccountName, reporting.EffectiveSegment(row.Segment))
		for _, p := range report.Products {
			cells = append(cells, row.ByProduct[p])
		}
		cells = append(cells, row.TotalARR)
		values = append(values, cells)
	}

	totalRow := make([]interface{}, 0, len(header))
	totalRow = append(totalRow, "Total", "")
	for _, p := range report.Products {
		totalRow = append(totalRow, report.TotalByProduct[p])
	}
	totalRow = append(totalRow, report.GrandTotal)
	values = append(values, totalRow)

	return values
}
