package salesforce

import (
	"strings"

	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/salesforce/sfclient"
	"github.com/dazos/cfo-copilot-api/internal/config"
	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/pkg/utils"
)

// RecordType.Name distinguishes renewals for the ARR table.
const opportunitySOQL = "SELECT Id, Name, Amount, CloseDate, StageName, Type, RecordType.Name, " +
	"Account.Id, Account.Name, CreatedDate " +
	"FROM Opportunity ORDER BY CloseDate DESC NULLS LAST"

// TotalPrice is the monthly recurring value; Product2.Name (or Name) feeds the
// product columns.
const opportunityLineItemSOQL = "SELECT Id, OpportunityId, Name, Product2.Name, Quantity, UnitPrice, TotalPrice FROM OpportunityLineItem"

// Account_Status__c and Segment__c are org-specific custom fields.
const accountSOQL = "SELECT Id, Name, Type, Account_Status__c, Industry, AnnualRevenue, NumberOfEmployees, " +
	"BillingCountry, BillingCity, BillingState, Phone, Website, Segment__c, CreatedDate " +
	"FROM Account ORDER BY Name"

type SalesforceIntegrator interface {
	IsConfigured() bool
	FetchAccounts() ([]*domain.Account, error)
	FetchOpportunities() ([]*domain.Opportunity, error)
	FetchOpportunityLineItems() ([]*domain.OpportunityLineItem, error)
}

type SalesforceService struct {
	cfg    *config.Config
	Client sfclient.Client
}

func New(cfg *config.Config, client sfclient.Client) SalesforceIntegrator {
	return &SalesforceService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SalesforceService) IsConfigured() bool {
	return s.cfg.Salesforce.Username != "" && s.cfg.Salesforce.Password != ""
}

func (s *SalesforceService) FetchAccounts() ([]*domain.Account, error) {
	records, err := s.Client.Query(accountSOQL)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(records))
	for _, rec := range records {
		sfID := recString(rec, "Id")
		if sfID == "" {
			continue
		}

		accounts = append(accounts, &domain.Account{
			SFID:              sfID,
			Name:              recString(rec, "Name"),
			Type:              recString(rec, "Type"),
			Status:            recString(rec, "Account_Status__c"),
			Industry:          recString(rec, "Industry"),
			AnnualRevenue:     recFloatPtr(rec, "AnnualRevenue"),
			NumberOfEmployees: recIntPtr(rec, "NumberOfEmployees"),
			BillingCountry:    recString(rec, "BillingCountry"),
			BillingCity:       recString(rec, "BillingCity"),
			BillingState:      recString(rec, "BillingState"),
			Phone:             recString(rec, "Phone"),
			Website:           recString(rec, "Website"),
			Segment:           recString(rec, "Segment__c"),
			CreatedDate:       utils.ParseISODateTime(recString(rec, "CreatedDate")),
		})
	}

	return accounts, nil
}

func (s *SalesforceService) FetchOpportunities() ([]*domain.Opportunity, error) {
	records, err := s.Client.Query(opportunitySOQL)
	if err != nil {
		return nil, err
	}

	opportunities := make([]*domain.Opportunity, 0, len(records))
	for _, rec := range records {
		sfID := recString(rec, "Id")
		if sfID == "" {
			continue
		}

		opportunities = append(opportunities, &domain.Opportunity{
			SFID:           sfID,
			Name:           recString(rec, "Name"),
			Amount:         recFloat(rec, "Amount"),
			CloseDate:      utils.ParseISODate(recString(rec, "CloseDate")),
			StageName:      recString(rec, "StageName"),
			Type:           recString(rec, "Type"),
			RecordTypeName: strings.TrimSpace(recString(rec, "RecordType_Name")),
			AccountID:      recString(rec, "Account_Id"),
			AccountName:    recString(rec, "Account_Name"),
			CreatedDate:    utils.ParseISODateTime(recString(rec, "CreatedDate")),
		})
	}

	return opportunities, nil
}

func (s *SalesforceService) FetchOpportunityLineItems() ([]*domain.OpportunityLineItem, error) {
	records, err := s.Client.Query(opportunityLineItemSOQL)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*domain.OpportunityLineItem, 0, len(records))
	for _, rec := range records {
		oppSFID := recString(rec, "OpportunityId")
		if oppSFID == "" {
			continue
		}

		quantity := recFloat(rec, "Quantity")
		unitPrice := recFloat(rec, "UnitPrice")

		total, hasTotal := recFloatOK(rec, "TotalPrice")
		if !hasTotal {
			total = unitPrice * quantity
		}

		lineItems = append(lineItems, &domain.OpportunityLineItem{
			OpportunitySFID: oppSFID,
			ProductName:     lineItemProductName(rec),
			Quantity:        quantity,
			UnitPrice:       unitPrice,
			TotalPrice:      total,
		})
	}

	return lineItems, nil
}

// lineItemProductName prefers Product2.Name; when the product reference is
// missing it falls back to the segment of the line's own Name after the last
// " - " separator (e.g. "Account - Renewal - Kipu API" -> "Kipu API").
func lineItemProductName(rec sfclient.Record) string {
	if name := strings.TrimSpace(recString(rec, "Product2_Name")); name != "" {
		return name
	}

	raw := strings.TrimSpace(recString(rec, "Name"))
	if raw == "" {
		return ""
	}
	if idx := strings.LastIndex(raw, " - "); idx >= 0 {
		if tail := strings.TrimSpace(raw[idx+3:]); tail != "" {
			return tail
		}
	}
	return raw
}

func recString(rec sfclient.Record, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}

func recFloat(rec sfclient.Record, key string) float64 {
	f, _ := recFloatOK(rec, key)
	return f
}

func recFloatOK(rec sfclient.Record, key string) (float64, bool) {
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func recFloatPtr(rec sfclient.Record, key string) *float64 {
	if f, ok := recFloatOK(rec, key); ok {
		return &f
	}
	return nil
}

func recIntPtr(rec sfclient.Record, key string) *int {
	if f, ok := recFloatOK(rec, key); ok {
		n := int(f)
		return &n
	}
	return nil
}
