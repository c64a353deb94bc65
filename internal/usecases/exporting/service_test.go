package exporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	gsmocks "github.com/dazos/cfo-copilot-api/infrastructure/integrator/googlesheets/mocks"
	"github.com/dazos/cfo-copilot-api/internal/config"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

type stubReporter struct {
	report *domain.ARRReport
	err    error
}

func (s *stubReporter) ARRByAccountProduct() (*domain.ARRReport, error) { return s.report, s.err }
func (s *stubReporter) DashboardKPI() (*domain.DashboardKPI, error)     { return nil, nil }
func (s *stubReporter) ARRByAccount() ([]*domain.ARRAccountSummary, float64, error) {
	return nil, 0, nil
}
func (s *stubReporter) RenewalARRSplit(int) (*domain.RenewalARRSplit, error) { return nil, nil }
func (s *stubReporter) ListAccounts(int) ([]*domain.Account, error)          { return nil, nil }
func (s *stubReporter) ListOpportunities(int, string) ([]*domain.Opportunity, error) {
	return nil, nil
}

func sampleReport() *domain.ARRReport {
	return &domain.ARRReport{
		Products: []string{"iCampaign Platform", "Other"},
		Rows: []*domain.ARRAccountRow{
			{
				AccountName: "Acme Treatment",
				Segment:     "Enterprise",
				ByProduct:   map[string]float64{"iCampaign Platform": 3600, "Other": 0},
				TotalARR:    3600,
			},
			{
				AccountName: "Beta Health",
				Segment:     "",
				ByProduct:   map[string]float64{"iCampaign Platform": 0, "Other": 1806.6},
				TotalARR:    1806.6,
			},
		},
		TotalByProduct: map[string]float64{"iCampaign Platform": 3600, "Other": 1806.6},
		GrandTotal:     5406.6,
	}
}

func newTestService(t *testing.T) (*service, *gsmocks.MockGoogleSheetsIntegrator) {
	ctrl := gomock.NewController(t)
	sheets := gsmocks.NewMockGoogleSheetsIntegrator(ctrl)

	cfg := &config.Config{
		GoogleSheets: config.GoogleSheets{
			SheetID:          "sheet-123",
			ARRExportRange:   "ARR Export!A1:Z200",
			ExportSheetTitle: "CARR by Account",
		},
	}

	svc := &service{
		appConfig: cfg,
		reporter:  &stubReporter{report: sampleReport()},
		sheets:    sheets,
		location:  time.UTC,
		now:       func() time.Time { return time.Date(2025, time.July, 15, 14, 30, 0, 0, time.UTC) },
	}

	return svc, sheets
}

func TestBuildSheetValues(t *testing.T) {
	values := buildSheetValues(sampleReport())

	require.Len(t, values, 4)
	assert.Equal(t, []interface{}{"Account", "Segment", "iCampaign Platform", "Other", "Total ARR"}, values[0])
	assert.Equal(t, []interface{}{"Acme Treatment", "Enterprise", 3600.0, 0.0, 3600.0}, values[1])
	// Blank segments fall back to the default.
	assert.Equal(t, []interface{}{"Beta Health", "SMB/ MM", 0.0, 1806.6, 1806.6}, values[2])
	assert.Equal(t, []interface{}{"Total", "", 3600.0, 1806.6, 5406.6}, values[3])
}

func TestExportARRToGoogleSheet_NotConfigured(t *testing.T) {
	svc, sheets := newTestService(t)
	sheets.EXPECT().IsConfigured().Return(false)

	result := svc.ExportARRToGoogleSheet()

	assert.False(t, result.OK)
	assert.Contains(t, result.Error, "Google Sheets not configured")
}

func TestExportARRToGoogleSheet_CreatesNewSpreadsheet(t *testing.T) {
	svc, sheets := newTestService(t)

	sheets.EXPECT().IsConfigured().Return(true)
	sheets.EXPECT().CreateSpreadsheet("CARR by Account 2025-07-15 14:30 EST").
		Return("new-sheet-id", "https://docs.google.com/spreadsheets/d/new-sheet-id/edit", nil)
	sheets.EXPECT().UpdateRange("new-sheet-id", "Sheet1!A1:Z200", gomock.Any()).Return(nil)

	result := svc.ExportARRToGoogleSheet()

	assert.True(t, result.OK)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/new-sheet-id/edit", result.SpreadsheetURL)
	assert.Equal(t, 4, result.RowsWritten)
}

func TestExportARRToGoogleSheet_FallsBackToConfiguredSheet(t *testing.T) {
	svc, sheets := newTestService(t)

	sheets.EXPECT().IsConfigured().Return(true)
	sheets.EXPECT().CreateSpreadsheet(gomock.Any()).
		Return("", "", errors.New("storage quota exceeded"))
	sheets.EXPECT().UpdateRange("sheet-123", "ARR Export!A1:Z200", gomock.Any()).Return(nil)

	result := svc.ExportARRToGoogleSheet()

	assert.True(t, result.OK)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/sheet-123/edit", result.SpreadsheetURL)
	assert.Equal(t, 4, result.RowsWritten)
}

func TestExportARRToGoogleSheet_FallbackWithoutSheetID(t *testing.T) {
	svc, sheets := newTestService(t)
	svc.appConfig.GoogleSheets.SheetID = ""

	sheets.EXPECT().IsConfigured().Return(true)
	sheets.EXPECT().CreateSpreadsheet(gomock.Any()).
		Return("", "", errors.New("storage quota exceeded"))

	result := svc.ExportARRToGoogleSheet()

	assert.False(t, result.OK)
	assert.Contains(t, result.Error, "GOOGLE_SHEET_ID is not set")
}

func TestExportARRToGoogleSheet_FallbackWriteFailure(t *testing.T) {
	svc, sheets := newTestService(t)

	sheets.EXPECT().IsConfigured().Return(true)
	sheets.EXPECT().CreateSpreadsheet(gomock.Any()).
		Return("", "", errors.New("storage quota exceeded"))
	sheets.EXPECT().UpdateRange("sheet-123", "ARR Export!A1:Z200", gomock.Any()).
		Return(errors.New("403 forbidden"))

	result := svc.ExportARRToGoogleSheet()

	assert.False(t, result.OK)
	assert.Contains(t, result.Error, "Share it with the service account as Editor")
}

func TestExportARRToGoogleSheet_ReportFailure(t *testing.T) {
	svc, sheets := newTestService(t)
	svc.reporter = &stubReporter{err: errors.New("db down")}

	sheets.EXPECT().IsConfigured().Return(true)

	result := svc.ExportARRToGoogleSheet()

	assert.False(t, result.OK)
	assert.Contains(t, result.Error, "failed to build ARR report")
}
