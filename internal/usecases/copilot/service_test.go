package copilot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dazos/cfo-copilot-api/infrastructure/repository/mocks"
	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/internal/usecases/snapshotting"
)

type copilotMocks struct {
	accountRepo  *mocks.MockAccountRepository
	oppRepo      *mocks.MockOpportunityRepository
	lineItemRepo *mocks.MockOpportunityLineItemRepository
	eodRepo      *mocks.MockEODSnapshotRepository
}

func newTestService(t *testing.T, now time.Time) (*service, copilotMocks) {
	ctrl := gomock.NewController(t)

	m := copilotMocks{
		accountRepo:  mocks.NewMockAccountRepository(ctrl),
		oppRepo:      mocks.NewMockOpportunityRepository(ctrl),
		lineItemRepo: mocks.NewMockOpportunityLineItemRepository(ctrl),
		eodRepo:      mocks.NewMockEODSnapshotRepository(ctrl),
	}

	svc := &service{
		accountRepo:  m.accountRepo,
		oppRepo:      m.oppRepo,
		lineItemRepo: m.lineItemRepo,
		eodRepo:      m.eodRepo,
		location:     time.UTC,
		now:          func() time.Time { return now },
	}

	return svc, m
}

// Two accounts with open renewals: Acme at $300/mo ($3,600 ARR, the Kipu API
// item is excluded) and Beta at $150.55/mo ($1,806.60 ARR). Live grand total
// is $5,406.60.
func copilotFixture() ([]*domain.Account, []*domain.Opportunity, []*domain.OpportunityLineItem) {
	closeDate := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	accounts := []*domain.Account{
		{SFID: "ACC1", Name: "Acme Treatment", Segment: "Enterprise"},
		{SFID: "ACC2", Name: "Beta Health"},
	}
	opportunities := []*domain.Opportunity{
		{
			SFID:           "OPP1",
			Name:           "Acme Treatment - Renewal",
			Amount:         5000,
			CloseDate:      &closeDate,
			StageName:      "Negotiation",
			RecordTypeName: "Renewal",
			AccountID:      "ACC1",
			AccountName:    "Acme Treatment",
		},
		{
			SFID:           "OPP2",
			Name:           "Beta Health - Renewal",
			Amount:         2000,
			StageName:      "Proposal",
			RecordTypeName: "Renewal",
			AccountID:      "ACC2",
			AccountName:    "Beta Health",
		},
	}
	lineItems := []*domain.OpportunityLineItem{
		{OpportunitySFID: "OPP1", ProductName: "Premium Support", TotalPrice: 300},
		{OpportunitySFID: "OPP1", ProductName: "Kipu API", TotalPrice: 500},
		{OpportunitySFID: "OPP2", ProductName: "iCampaign Platform", TotalPrice: 150.55},
	}

	return accounts, opportunities, lineItems
}

func expectLiveData(m copilotMocks) {
	accounts, opportunities, lineItems := copilotFixture()
	m.accountRepo.EXPECT().GetAll().Return(accounts, nil)
	m.oppRepo.EXPECT().GetAll().Return(opportunities, nil)
	m.lineItemRepo.EXPECT().GetAll().Return(lineItems, nil)
}

func encodeFixtureSnapshot(t *testing.T) []byte {
	accounts, opportunities, lineItems := copilotFixture()
	data, err := snapshotting.Encode(accounts, opportunities, lineItems)
	require.NoError(t, err)
	return data
}

func TestAnswer_TotalARRLive(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)
	expectLiveData(m)

	response, err := svc.Answer("What's our total ARR?")

	require.NoError(t, err)
	assert.Equal(t, "Total ARR is $5,406.60 across 2 accounts with open renewals.", response.Answer)
	assert.Equal(t, []string{"Customer overview (open renewals)"}, response.Sources)
}

func TestAnswer_TotalARRFromSnapshot(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	snapshotDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	m.eodRepo.EXPECT().GetByDate(snapshotDate).Return(&domain.SalesforceEODSnapshot{
		SnapshotDate: snapshotDate,
		Data:         encodeFixtureSnapshot(t),
	}, nil)

	response, err := svc.Answer("Total CARR as of March 2025?")

	require.NoError(t, err)
	assert.Equal(t, "Total ARR is $5,406.60 across 2 accounts with open renewals.", response.Answer)
	assert.Equal(t, []string{"EOD snapshot 2025-03-31"}, response.Sources)
}

func TestAnswer_TotalARRMissingSnapshotUsesLive(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	snapshotDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	m.eodRepo.EXPECT().GetByDate(snapshotDate).Return(nil, nil)
	expectLiveData(m)

	response, err := svc.Answer("total arr as of March 2025")

	require.NoError(t, err)
	assert.Equal(t, "Total ARR is $5,406.60 across 2 accounts with open renewals.", response.Answer)
	assert.Equal(t, []string{
		"Customer overview (open renewals)",
		"No snapshot found for 2025-03-31; using live data",
	}, response.Sources)
}

func TestAnswer_ARRDeltaWithoutPriorSnapshot(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	expectLiveData(m)
	m.eodRepo.EXPECT().GetLatestBefore(now).Return(nil, nil)

	response, err := svc.Answer("How did our ARR change?")

	require.NoError(t, err)
	assert.Contains(t, response.Answer, "Current total ARR is $5,406.60 across 2 accounts.")
	assert.Contains(t, response.Answer, "No prior snapshot exists yet")
	assert.Equal(t, []string{"Customer overview (open renewals)", "No prior snapshot available"}, response.Sources)
}

func TestAnswer_ARRDeltaAgainstSnapshot(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	expectLiveData(m)

	// Snapshot holds only the Acme opportunity, so its total is $3,600.
	accounts, opportunities, lineItems := copilotFixture()
	data, err := snapshotting.Encode(accounts[:1], opportunities[:1], lineItems[:2])
	require.NoError(t, err)

	snapshotDate := time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC)
	m.eodRepo.EXPECT().GetLatestBefore(now).Return(&domain.SalesforceEODSnapshot{
		SnapshotDate: snapshotDate,
		Data:         data,
	}, nil)

	response, err := svc.Answer("How has ARR changed since the last snapshot?")

	require.NoError(t, err)
	assert.Contains(t, response.Answer, "Total ARR is $5,406.60, up $1,806.60")
	assert.Contains(t, response.Answer, "since the 2025-07-14 snapshot")
	assert.Equal(t, []string{"Customer overview (open renewals)", "EOD snapshot 2025-07-14"}, response.Sources)
}

func TestAnswer_LargestCustomer(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)
	expectLiveData(m)

	response, err := svc.Answer("Who is our largest customer?")

	require.NoError(t, err)
	assert.Equal(t, "The largest customer is Acme Treatment with $3,600.00 in ARR.", response.Answer)
	assert.Equal(t, []string{"Customer overview (open renewals)"}, response.Sources)
}

func TestAnswer_RenewalsInMonth(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	// "in June 2025" also resolves as a reference date; no snapshot exists
	// for it so the service falls back to live data.
	snapshotDate := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	m.eodRepo.EXPECT().GetByDate(snapshotDate).Return(nil, nil)
	expectLiveData(m)

	response, err := svc.Answer("Which renewals land in June 2025?")

	require.NoError(t, err)
	assert.Equal(t, "1 accounts renew in June 2025, totaling $3,600.00 in ARR: Acme Treatment.", response.Answer)
	assert.Contains(t, response.Sources, "No snapshot found for 2025-06-30; using live data")
}

func TestAnswer_RenewalsInMonthNoneFound(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	snapshotDate := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	m.eodRepo.EXPECT().GetByDate(snapshotDate).Return(nil, nil)
	expectLiveData(m)

	response, err := svc.Answer("Which renewals land in January 2026?")

	require.NoError(t, err)
	assert.Equal(t, "No accounts have renewals in January 2026.", response.Answer)
}

func TestAnswer_HelpFallback(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	response, err := svc.Answer("Tell me a joke")

	require.NoError(t, err)
	assert.Equal(t, helpAnswer, response.Answer)
	assert.Empty(t, response.Sources)
}

func TestAnswer_RepositoryErrorPropagates(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	m.accountRepo.EXPECT().GetAll().Return(nil, errors.New("connection refused"))

	response, err := svc.Answer("total arr")

	require.Error(t, err)
	assert.Nil(t, response)
}
