package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dazos/cfo-copilot-api/internal/domain"
)

type stubReportingService struct {
	report    *domain.ARRReport
	kpi       *domain.DashboardKPI
	summaries []*domain.ARRAccountSummary
	totalARR  float64
	split     *domain.RenewalARRSplit
	splitArg  int
	err       error
}

func (s *stubReportingService) ARRByAccountProduct() (*domain.ARRReport, error) {
	return s.report, s.err
}

func (s *stubReportingService) DashboardKPI() (*domain.DashboardKPI, error) {
	return s.kpi, s.err
}

func (s *stubReportingService) ARRByAccount() ([]*domain.ARRAccountSummary, float64, error) {
	return s.summaries, s.totalARR, s.err
}

func (s *stubReportingService) RenewalARRSplit(limit int) (*domain.RenewalARRSplit, error) {
	s.splitArg = limit
	return s.split, s.err
}

func (s *stubReportingService) ListAccounts(int) ([]*domain.Account, error) {
	return nil, s.err
}

func (s *stubReportingService) ListOpportunities(int, string) ([]*domain.Opportunity, error) {
	return nil, s.err
}

func TestGetDashboardKPI(t *testing.T) {
	syncedAt := time.Date(2025, time.July, 15, 18, 59, 59, 0, time.UTC)
	service := &stubReportingService{kpi: &domain.DashboardKPI{
		ARR:                5406.6,
		Pipeline:           12000,
		SalesforceSyncedAt: &syncedAt,
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-kpi", nil)
	rec := httptest.NewRecorder()

	GetDashboardKPI(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var kpi domain.DashboardKPI
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kpi))
	assert.Equal(t, 5406.6, kpi.ARR)
	assert.Equal(t, 12000.0, kpi.Pipeline)
	require.NotNil(t, kpi.SalesforceSyncedAt)
}

func TestGetDashboardKPIServiceFailure(t *testing.T) {
	service := &stubReportingService{err: errors.New("db down")}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-kpi", nil)
	rec := httptest.NewRecorder()

	GetDashboardKPI(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetARRByAccount(t *testing.T) {
	service := &stubReportingService{
		summaries: []*domain.ARRAccountSummary{
			{AccountID: "ACC1", AccountName: "Acme Treatment", OpenRenewalCount: 2, ARR: 3600},
		},
		totalARR: 3600,
	}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard-kpi/arr-by-account", nil)
	rec := httptest.NewRecorder()

	GetARRByAccount(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "accounts")
	assert.Contains(t, body, "total_arr")
}

func TestGetARRExamplesLimit(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"default when absent", "", 10},
		{"explicit value", "?limit=25", 25},
		{"clamped to max", "?limit=500", 50},
		{"default on garbage", "?limit=abc", 10},
		{"default on non-positive", "?limit=0", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubReportingService{split: &domain.RenewalARRSplit{}}

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard-kpi/arr-examples"+tt.query, nil)
			rec := httptest.NewRecorder()

			GetARRExamples(service).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expected, service.splitArg)
		})
	}
}
