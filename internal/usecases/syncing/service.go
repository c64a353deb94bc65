package syncing

import (
	"time"

	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/googlesheets"
	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/quickbooks"
	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/salesforce"
	"github.com/dazos/cfo-copilot-api/infrastructure/repository"
	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/internal/usecases/reporting"
	"github.com/dazos/cfo-copilot-api/pkg/log"
	"github.com/dazos/cfo-copilot-api/pkg/utils"
)

// Service runs the source-system syncs and the end-of-day snapshot
type Service interface {
	SyncSalesforce() *domain.SyncResult
	SyncGoogleSheets(rangeName string) *domain.SheetSyncResult
	SyncQuickBooks() *domain.QuickBooksSyncResult
	TakeEODSnapshot() error
}

type service struct {
	salesforce   salesforce.SalesforceIntegrator
	googleSheets googlesheets.GoogleSheetsIntegrator
	quickBooks   quickbooks.QuickBooksIntegrator

	storeRepo    repository.SalesforceStoreRepository
	accountRepo  repository.AccountRepository
	oppRepo      repository.OpportunityRepository
	lineItemRepo repository.OpportunityLineItemRepository
	eodRepo      repository.EODSnapshotRepository
	sheetRepo    repository.SheetSnapshotRepository
	qbRepo       repository.QuickBooksSnapshotRepository

	location *time.Location
	now      func() time.Time
}

func NewService(
	sfIntegrator salesforce.SalesforceIntegrator,
	gsIntegrator googlesheets.GoogleSheetsIntegrator,
	qbIntegrator quickbooks.QuickBooksIntegrator,
	storeRepo repository.SalesforceStoreRepository,
	accountRepo repository.AccountRepository,
	oppRepo repository.OpportunityRepository,
	lineItemRepo repository.OpportunityLineItemRepository,
	eodRepo repository.EODSnapshotRepository,
	sheetRepo repository.SheetSnapshotRepository,
	qbRepo repository.QuickBooksSnapshotRepository,
	location *time.Location,
) Service {
	return &service{
		salesforce:   sfIntegrator,
		googleSheets: gsIntegrator,
		quickBooks:   qbIntegrator,
		storeRepo:    storeRepo,
		accountRepo:  accountRepo,
		oppRepo:      oppRepo,
		lineItemRepo: lineItemRepo,
		eodRepo:      eodRepo,
		sheetRepo:    sheetRepo,
		qbRepo:       qbRepo,
		location:     location,
		now:          time.Now,
	}
}

// SyncSalesforce replaces the local accounts, opportunities and line items
// with a fresh pull. All three entity types are fetched up front and swapped
// in a single transaction; a failure anywhere leaves the previous cycle's
// data untouched.
func (s *service) SyncSalesforce() *domain.SyncResult {
	if !s.salesforce.IsConfigured() {
		return &domain.SyncResult{
			OK:    false,
			Error: "Salesforce not configured. Set SALESFORCE_USERNAME, SALESFORCE_PASSWORD, and SALESFORCE_SECURITY_TOKEN in .env.",
		}
	}

	syncID := utils.GenerateID()
	logger := log.L.WithFields(log.Fields{"sync_id": syncID})
	syncedAt := s.now().UTC()

	accounts, err := s.salesforce.FetchAccounts()
	if err != nil {
		logger.WithError(err).Error("salesforce accounts fetch failed")
		return &domain.SyncResult{OK: false, SyncID: syncID, Error: "Accounts sync failed: " + err.Error()}
	}
	stampAccounts(accounts, syncedAt)

	opportunities, err := s.salesforce.FetchOpportunities()
	if err != nil {
		logger.WithError(err).Error("salesforce opportunities fetch failed")
		return &domain.SyncResult{OK: false, SyncID: syncID, Error: "Opportunities sync failed: " + err.Error()}
	}
	stampOpportunities(opportunities, syncedAt)

	lineItems, err := s.salesforce.FetchOpportunityLineItems()
	if err != nil {
		logger.WithError(err).Error("salesforce line items fetch failed")
		return &domain.SyncResult{OK: false, SyncID: syncID, Error: "OpportunityLineItem sync failed: " + err.Error()}
	}
	stampLineItems(lineItems, syncedAt)

	if err := s.storeRepo.ReplaceAll(accounts, opportunities, lineItems); err != nil {
		logger.WithError(err).Error("salesforce store replace failed")
		return &domain.SyncResult{OK: false, SyncID: syncID, Error: "Salesforce sync failed: " + err.Error()}
	}

	result := &domain.SyncResult{
		OK:                        true,
		SyncID:                    syncID,
		SyncedAccounts:            len(accounts),
		SyncedOpportunities:       len(opportunities),
		SyncedLineItems:           len(lineItems),
		RenewalOpportunitiesCount: reporting.CountRenewalOpportunities(opportunities),
		Message:                   "Accounts, opportunities, and opportunity products synced.",
	}

	logger.WithFields(log.Fields{
		"sync_accounts":   result.SyncedAccounts,
		"sync_opps":       result.SyncedOpportunities,
		"sync_line_items": result.SyncedLineItems,
	}).Info("salesforce sync completed")

	return result
}

func stampAccounts(accounts []*domain.Account, syncedAt time.Time) {
	for _, a := range accounts {
		t := syncedAt
		a.SyncedAt = &t
	}
}

func stampOpportunities(opportunities []*domain.Opportunity, syncedAt time.Time) {
	for _, o := range opportunities {
		t := syncedAt
		o.SyncedAt = &t
	}
}

func stampLineItems(lineItems []*domain.OpportunityLineItem, syncedAt time.Time) {
	for _, li := range lineItems {
		t := syncedAt
		li.SyncedAt = &t
	}
}
