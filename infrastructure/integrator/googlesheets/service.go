package googlesheets

import (
	"fmt"

	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/googlesheets/gsclient"
	"github.com/dazos/cfo-copilot-api/internal/config"
)

type GoogleSheetsIntegrator interface {
	IsConfigured() bool
	ReadRange(rangeA1 string) ([][]interface{}, error)
	UpdateRange(spreadsheetID, rangeA1 string, values [][]interface{}) error
	CreateSpreadsheet(title string) (string, string, error)
}

type GoogleSheetsService struct {
	cfg    *config.Config
	Client gsclient.Client
}

func New(cfg *config.Config, client gsclient.Client) GoogleSheetsIntegrator {
	return &GoogleSheetsService{
		cfg:    cfg,
		Client: client,
	}
}

// IsConfigured needs a credential source only; the sheet id is required for
// reads, not for creating new spreadsheets
func (s *GoogleSheetsService) IsConfigured() bool {
	return s.cfg.GoogleSheets.CredentialsFile != "" || s.cfg.GoogleSheets.CredentialsJSON != ""
}

// ReadRange reads from the configured financial model sheet using A1 notation
func (s *GoogleSheetsService) ReadRange(rangeA1 string) ([][]interface{}, error) {
	if s.cfg.GoogleSheets.SheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SHEET_ID is not set (required for read)")
	}
	return s.Client.ReadRange(s.cfg.GoogleSheets.SheetID, rangeA1)
}

func (s *GoogleSheetsService) UpdateRange(spreadsheetID, rangeA1 string, values [][]interface{}) error {
	if spreadsheetID == "" {
		spreadsheetID = s.cfg.GoogleSheets.SheetID
	}
	if spreadsheetID == "" {
		return fmt.Errorf("spreadsheet id or GOOGLE_SHEET_ID is required for update")
	}
	return s.Client.UpdateRange(spreadsheetID, rangeA1, values)
}

func (s *GoogleSheetsService) CreateSpreadsheet(title string) (string, string, error) {
	return s.Client.CreateSpreadsheet(title)
}
