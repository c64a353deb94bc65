package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dazos/cfo-copilot-api/internal/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func openRenewal(sfID, accountID, accountName string, closeDate *time.Time) *domain.Opportunity {
	return &domain.Opportunity{
		SFID:           sfID,
		Name:           accountName + " - Renewal",
		StageName:      "Negotiation",
		RecordTypeName: "Renewal",
		AccountID:      accountID,
		AccountName:    accountName,
		CloseDate:      closeDate,
	}
}

func lineItem(oppSFID, product string, totalPrice float64) *domain.OpportunityLineItem {
	return &domain.OpportunityLineItem{
		OpportunitySFID: oppSFID,
		ProductName:     product,
		TotalPrice:      totalPrice,
	}
}

func TestComputeARR_ExcludesProductsAndAnnualizes(t *testing.T) {
	accounts := []*domain.Account{
		{SFID: "ACC1", Name: "Acme Treatment", Segment: "Enterprise"},
	}
	opportunities := []*domain.Opportunity{
		openRenewal("OPP1", "ACC1", "Acme Treatment", datePtr(2025, time.June, 30)),
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Kipu API", 500),
		lineItem("OPP1", "Premium Support", 300),
	}

	report := ComputeARR(accounts, opportunities, lineItems)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, "Acme Treatment", row.AccountName)
	assert.Equal(t, "Enterprise", row.Segment)
	assert.Equal(t, 3600.0, row.ByProduct["Premium Support"])
	assert.Equal(t, 0.0, row.ByProduct["Other"])
	assert.Equal(t, 3600.0, row.TotalARR)
	assert.Equal(t, 3600.0, report.GrandTotal)
	assert.Equal(t, 3600.0, report.TotalByProduct["Premium Support"])

	// column order: canonical columns then the Other bucket
	require.NotEmpty(t, report.Products)
	assert.Equal(t, OtherProductColumn, report.Products[len(report.Products)-1])
}

func TestComputeARR_ClosedAndNonRenewalExcluded(t *testing.T) {
	opportunities := []*domain.Opportunity{
		{SFID: "OPP1", StageName: "Closed Won", RecordTypeName: "Renewal", AccountID: "ACC1", AccountName: "Closed Co"},
		{SFID: "OPP2", StageName: "Negotiation", RecordTypeName: "New Business", AccountID: "ACC2", AccountName: "New Co"},
		{SFID: "OPP3", StageName: "", RecordTypeName: "Renewal", AccountID: "ACC3", AccountName: "Stageless Co"},
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Premium Support", 1000),
		lineItem("OPP2", "Premium Support", 1000),
		lineItem("OPP3", "Premium Support", 1000),
	}

	report := ComputeARR(nil, opportunities, lineItems)

	assert.Empty(t, report.Rows)
	assert.Equal(t, 0.0, report.GrandTotal)
}

func TestComputeARR_EmptyProductNameCountsAsOther(t *testing.T) {
	opportunities := []*domain.Opportunity{
		openRenewal("OPP1", "ACC1", "Acme", nil),
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "", 100),
		lineItem("OPP1", "Mystery Product", 50),
	}

	report := ComputeARR(nil, opportunities, lineItems)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, 1800.0, report.Rows[0].ByProduct["Other"])
	assert.Equal(t, 1800.0, report.Rows[0].TotalARR)
}

func TestComputeARR_UnknownAccountPlaceholderAndDefaultSegment(t *testing.T) {
	opportunities := []*domain.Opportunity{
		openRenewal("OPP1", "ACC404", "", nil),
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Premium Support", 100),
	}

	report := ComputeARR(nil, opportunities, lineItems)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, UnknownAccountName, report.Rows[0].AccountName)
	assert.Equal(t, DefaultSegment, report.Rows[0].Segment)
}

func TestComputeARR_SubscriptionEndDateIsLatestCloseDate(t *testing.T) {
	opportunities := []*domain.Opportunity{
		openRenewal("OPP1", "ACC1", "Acme", datePtr(2025, time.March, 31)),
		openRenewal("OPP2", "ACC1", "Acme", datePtr(2025, time.September, 30)),
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Premium Support", 100),
		lineItem("OPP2", "Premium Support", 100),
	}

	report := ComputeARR(nil, opportunities, lineItems)

	require.Len(t, report.Rows, 1)
	require.NotNil(t, report.Rows[0].SubscriptionEndDate)
	assert.Equal(t, *datePtr(2025, time.September, 30), *report.Rows[0].SubscriptionEndDate)
}

func TestComputeARR_RoundingPerCell(t *testing.T) {
	opportunities := []*domain.Opportunity{
		openRenewal("OPP1", "ACC1", "Acme", nil),
	}
	// 10.005 * 12 = 120.06 exactly at the cell; cents must survive rounding
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Premium Support", 10.005),
		lineItem("OPP1", "iCampaign Platform", 33.3333),
	}

	report := ComputeARR(nil, opportunities, lineItems)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, 120.06, row.ByProduct["Premium Support"])
	assert.Equal(t, 400.0, row.ByProduct["iCampaign Platform"])
	assert.Equal(t, 520.06, row.TotalARR)
	assert.Equal(t, 520.06, report.GrandTotal)
}

func TestComputeARR_RowsSortedByTotalARRDescending(t *testing.T) {
	opportunities := []*domain.Opportunity{
		openRenewal("OPP1", "ACC1", "Small Co", nil),
		openRenewal("OPP2", "ACC2", "Big Co", nil),
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Premium Support", 100),
		lineItem("OPP2", "Premium Support", 900),
	}

	report := ComputeARR(nil, opportunities, lineItems)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Big Co", report.Rows[0].AccountName)
	assert.Equal(t, "Small Co", report.Rows[1].AccountName)
}

func TestComputeDashboardKPI(t *testing.T) {
	opportunities := []*domain.Opportunity{
		{SFID: "OPP1", StageName: "Negotiation", RecordTypeName: "Renewal", Amount: 5000},
		{SFID: "OPP2", StageName: "Proposal", RecordTypeName: "New Business", Amount: 7000},
		{SFID: "OPP3", StageName: "Closed Won", RecordTypeName: "Renewal", Amount: 9000},
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Premium Support", 300),
		lineItem("OPP1", "Kipu API", 500),
		lineItem("OPP2", "Premium Support", 100), // not a renewal, no ARR
		lineItem("OPP3", "Premium Support", 100), // closed, no ARR
	}

	arr, pipeline := ComputeDashboardKPI(opportunities, lineItems)

	assert.Equal(t, 3600.0, arr)
	assert.Equal(t, 12000.0, pipeline)
}

func TestComputeARRByAccount(t *testing.T) {
	opportunities := []*domain.Opportunity{
		openRenewal("OPP1", "ACC1", "Acme", nil),
		openRenewal("OPP2", "ACC1", "Acme", nil),
		openRenewal("OPP3", "ACC2", "Beta", nil),
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Premium Support", 100),
		lineItem("OPP2", "Premium Support", 200),
		lineItem("OPP3", "Premium Support", 1000),
	}

	summaries, total := ComputeARRByAccount(opportunities, lineItems)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Beta", summaries[0].AccountName)
	assert.Equal(t, 12000.0, summaries[0].ARR)
	assert.Equal(t, 1, summaries[0].OpenRenewalCount)
	assert.Equal(t, "Acme", summaries[1].AccountName)
	assert.Equal(t, 3600.0, summaries[1].ARR)
	assert.Equal(t, 2, summaries[1].OpenRenewalCount)
	assert.Equal(t, 15600.0, total)
}

func TestComputeRenewalARRSplit(t *testing.T) {
	opportunities := []*domain.Opportunity{
		{SFID: "OPP1", Name: "Open Renewal", StageName: "Negotiation", RecordTypeName: "Renewal"},
		{SFID: "OPP2", Name: "Won Renewal", StageName: "Closed Won", RecordTypeName: "Renewal"},
		{SFID: "OPP3", Name: "Lost Renewal", StageName: "Closed Lost", RecordTypeName: "Renewal"},
		{SFID: "OPP4", Name: "New Deal", StageName: "Negotiation", RecordTypeName: "New Business"},
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Premium Support", 300),
		lineItem("OPP2", "Premium Support", 1000),
		lineItem("OPP3", "Premium Support", 400),
		lineItem("OPP4", "Premium Support", 999),
	}

	split := ComputeRenewalARRSplit(opportunities, lineItems, 10)

	assert.Equal(t, 3600.0, split.OpenRenewalARR)
	assert.Equal(t, 12000.0, split.ClosedWonRenewalARR)
	assert.Equal(t, 15600.0, split.TotalRenewalARR)

	require.Len(t, split.OpenExamples, 1)
	assert.Equal(t, "Open Renewal", split.OpenExamples[0].Name)
	assert.Equal(t, 3600.0, split.OpenExamples[0].LineItemTotal)

	require.Len(t, split.ClosedWonExamples, 1)
	assert.Equal(t, "Won Renewal", split.ClosedWonExamples[0].Name)
	assert.Equal(t, 12000.0, split.ClosedWonExamples[0].LineItemTotal)
}

func TestComputeRenewalARRSplit_LimitCapsExamples(t *testing.T) {
	opportunities := []*domain.Opportunity{
		{SFID: "OPP1", Name: "R1", StageName: "Negotiation", RecordTypeName: "Renewal"},
		{SFID: "OPP2", Name: "R2", StageName: "Negotiation", RecordTypeName: "Renewal"},
		{SFID: "OPP3", Name: "R3", StageName: "Negotiation", RecordTypeName: "Renewal"},
	}
	lineItems := []*domain.OpportunityLineItem{
		lineItem("OPP1", "Premium Support", 100),
		lineItem("OPP2", "Premium Support", 200),
		lineItem("OPP3", "Premium Support", 300),
	}

	split := ComputeRenewalARRSplit(opportunities, lineItems, 2)

	assert.Len(t, split.OpenExamples, 2)
	assert.Equal(t, 7200.0, split.OpenRenewalARR) // limit caps examples, not the total
}

func TestCountRenewalOpportunities(t *testing.T) {
	opportunities := []*domain.Opportunity{
		{SFID: "OPP1", StageName: "Negotiation", RecordTypeName: "Renewal"},
		{SFID: "OPP2", StageName: "Closed Won", RecordTypeName: "Renewal"},
		{SFID: "OPP3", StageName: "Negotiation", RecordTypeName: "New Business"},
	}

	assert.Equal(t, 1, CountRenewalOpportunities(opportunities))
}
