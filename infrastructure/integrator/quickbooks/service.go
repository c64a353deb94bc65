package quickbooks

import (
	"encoding/json"
	"fmt"

	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/quickbooks/qbclient"
	"github.com/dazos/cfo-copilot-api/internal/config"
)

// ReportTypes are the supported report identifiers, in sync order
var ReportTypes = []string{"pl", "balance_sheet", "cash_flow"}

var reportAPINames = map[string]string{
	"pl":            "ProfitAndLoss",
	"balance_sheet": "BalanceSheet",
	"cash_flow":     "CashFlow",
}

type QuickBooksIntegrator interface {
	IsConfigured() bool
	FetchReport(reportType string) (json.RawMessage, error)
}

type QuickBooksService struct {
	cfg    *config.Config
	Client qbclient.Client
}

func New(cfg *config.Config, client qbclient.Client) QuickBooksIntegrator {
	return &QuickBooksService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *QuickBooksService) IsConfigured() bool {
	qbCfg := s.cfg.QuickBooks
	return qbCfg.ClientID != "" && qbCfg.ClientSecret != "" && qbCfg.RealmID != "" && qbCfg.RefreshToken != ""
}

// FetchReport fetches one of the supported report types over the default
// QuickBooks reporting period
func (s *QuickBooksService) FetchReport(reportType string) (json.RawMessage, error) {
	apiName, ok := reportAPINames[reportType]
	if !ok {
		return nil, fmt.Errorf("unknown report type %q", reportType)
	}
	return s.Client.GetReport(apiName, "", "")
}

// IsValidReportType reports whether the identifier names a supported report
func IsValidReportType(reportType string) bool {
	_, ok := reportAPINames[reportType]
	return ok
}
