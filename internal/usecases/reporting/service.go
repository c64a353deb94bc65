package reporting

import (
	"time"

	"github.com/dazos/cfo-copilot-api/infrastructure/repository"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

// Service exposes the aggregations over the synced store. All computation is
// pure and in-memory; the store is only touched to materialize the inputs.
type Service interface {
	ARRByAccountProduct() (*domain.ARRReport, error)
	DashboardKPI() (*domain.DashboardKPI, error)
	ARRByAccount() ([]*domain.ARRAccountSummary, float64, error)
	RenewalARRSplit(limit int) (*domain.RenewalARRSplit, error)
	ListAccounts(limit int) ([]*domain.Account, error)
	ListOpportunities(limit int, stage string) ([]*domain.Opportunity, error)
}

type service struct {
	accountRepo  repository.AccountRepository
	oppRepo      repository.OpportunityRepository
	lineItemRepo repository.OpportunityLineItemRepository
}

func NewService(
	accountRepo repository.AccountRepository,
	oppRepo repository.OpportunityRepository,
	lineItemRepo repository.OpportunityLineItemRepository,
) Service {
	return &service{
		accountRepo:  accountRepo,
		oppRepo:      oppRepo,
		lineItemRepo: lineItemRepo,
	}
}

func (s *service) ARRByAccountProduct() (*domain.ARRReport, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, err
	}
	opportunities, err := s.oppRepo.GetAll()
	if err != nil {
		return nil, err
	}
	lineItems, err := s.lineItemRepo.GetAll()
	if err != nil {
		return nil, err
	}

	return ComputeARR(accounts, opportunities, lineItems), nil
}

func (s *service) DashboardKPI() (*domain.DashboardKPI, error) {
	opportunities, err := s.oppRepo.GetAll()
	if err != nil {
		return nil, err
	}
	lineItems, err := s.lineItemRepo.GetAll()
	if err != nil {
		return nil, err
	}

	arr, pipeline := ComputeDashboardKPI(opportunities, lineItems)

	return &domain.DashboardKPI{
		ARR:                arr,
		Pipeline:           pipeline,
		SalesforceSyncedAt: latestSyncedAt(opportunities),
	}, nil
}

func (s *service) ARRByAccount() ([]*domain.ARRAccountSummary, float64, error) {
	opportunities, err := s.oppRepo.GetAll()
	if err != nil {
		return nil, 0, err
	}
	lineItems, err := s.lineItemRepo.GetAll()
	if err != nil {
		return nil, 0, err
	}

	summaries, total := ComputeARRByAccount(opportunities, lineItems)
	return summaries, total, nil
}

func (s *service) RenewalARRSplit(limit int) (*domain.RenewalARRSplit, error) {
	opportunities, err := s.oppRepo.GetAll()
	if err != nil {
		return nil, err
	}
	lineItems, err := s.lineItemRepo.GetAll()
	if err != nil {
		return nil, err
	}

	return ComputeRenewalARRSplit(opportunities, lineItems, limit), nil
}

// ListAccounts returns synced accounts with the default segment applied
func (s *service) ListAccounts(limit int) ([]*domain.Account, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(accounts) > limit {
		accounts = accounts[:limit]
	}
	for _, a := range accounts {
		a.Segment = EffectiveSegment(a.Segment)
	}

	return accounts, nil
}

func (s *service) ListOpportunities(limit int, stage string) ([]*domain.Opportunity, error) {
	opportunities, err := s.oppRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if stage != "" {
		filtered := make([]*domain.Opportunity, 0, len(opportunities))
		for _, o := range opportunities {
			if o.StageName == stage {
				filtered = append(filtered, o)
			}
		}
		opportunities = filtered
	}

	if limit > 0 && len(opportunities) > limit {
		opportunities = opportunities[:limit]
	}

	return opportunities, nil
}

func latestSyncedAt(opportunities []*domain.Opportunity) *time.Time {
	var latest *time.Time
	for _, o := range opportunities {
		if o.SyncedAt == nil {
			continue
		}
		if latest == nil || o.SyncedAt.After(*latest) {
			latest = o.SyncedAt
		}
	}
	return latest
}
