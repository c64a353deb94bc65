package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/pkg/apiErrors"
)

type stubSyncingService struct {
	syncResult  *domain.SyncResult
	sheetResult *domain.SheetSyncResult
	qbResult    *domain.QuickBooksSyncResult
	sheetRange  string
}

func (s *stubSyncingService) SyncSalesforce() *domain.SyncResult { return s.syncResult }

func (s *stubSyncingService) SyncGoogleSheets(rangeName string) *domain.SheetSyncResult {
	s.sheetRange = rangeName
	return s.sheetResult
}

func (s *stubSyncingService) SyncQuickBooks() *domain.QuickBooksSyncResult { return s.qbResult }

func (s *stubSyncingService) TakeEODSnapshot() error { return nil }

func TestRunSalesforceSync(t *testing.T) {
	service := &stubSyncingService{syncResult: &domain.SyncResult{
		OK:                  true,
		SyncID:              "a1B2c3",
		SyncedAccounts:      12,
		SyncedOpportunities: 30,
		SyncedLineItems:     45,
		Message:             "Accounts, opportunities, and opportunity products synced.",
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/sync/salesforce", nil)
	rec := httptest.NewRecorder()

	RunSalesforceSync(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.SyncResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.OK)
	assert.Equal(t, 12, result.SyncedAccounts)
}

// Connector failures are payload content, not transport errors.
func TestRunSalesforceSyncNotConfiguredStillOK(t *testing.T) {
	service := &stubSyncingService{syncResult: &domain.SyncResult{
		OK:    false,
		Error: "Salesforce not configured. Set SALESFORCE_USERNAME, SALESFORCE_PASSWORD, and SALESFORCE_SECURITY_TOKEN in .env.",
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/sync/salesforce", nil)
	rec := httptest.NewRecorder()

	RunSalesforceSync(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.SyncResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.OK)
	assert.Contains(t, result.Error, "Salesforce not configured")
}

func TestRunGoogleSheetsSync(t *testing.T) {
	service := &stubSyncingService{sheetResult: &domain.SheetSyncResult{
		OK:        true,
		RangeName: "Model!A1:F50",
		Rows:      20,
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/sync/google-sheets?range_name=Model%21A1%3AF50", nil)
	rec := httptest.NewRecorder()

	RunGoogleSheetsSync(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Model!A1:F50", service.sheetRange)
}

func TestRunGoogleSheetsSyncRequiresRangeName(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/sync/google-sheets", nil)
	rec := httptest.NewRecorder()

	RunGoogleSheetsSync(&stubSyncingService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
}

func TestRunQuickBooksSync(t *testing.T) {
	service := &stubSyncingService{qbResult: &domain.QuickBooksSyncResult{
		OK:     true,
		Synced: []string{"pl", "balance_sheet", "cash_flow"},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/sync/quickbooks", nil)
	rec := httptest.NewRecorder()

	RunQuickBooksSync(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.QuickBooksSyncResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []string{"pl", "balance_sheet", "cash_flow"}, result.Synced)
}
