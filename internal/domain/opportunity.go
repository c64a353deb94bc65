package domain

import "time"

// Opportunity is a Salesforce opportunity row from the last sync.
// Stage membership in the closed set determines open/closed; RecordTypeName
// equal to "renewal" (case-insensitive, trimmed) marks a renewal.
type Opportunity struct {
	ID             int64      `json:"-"`
	SFID           string     `json:"sf_id"`
	Name           string     `json:"name"`
	Amount         float64    `json:"amount"`
	CloseDate      *time.Time `json:"close_date"`
	StageName      string     `json:"stage_name"`
	Type           string     `json:"type"`
	RecordTypeName string     `json:"record_type_name"`
	AccountID      string     `json:"account_id"`
	AccountName    string     `json:"account_name"`
	CreatedDate    *time.Time `json:"created_date"`
	SyncedAt       *time.Time `json:"synced_at"`
}

// OpportunityLineItem is a product line on an opportunity.
// TotalPrice is the monthly recurring value (MRR); ARR = TotalPrice * 12,
// applied only at aggregation time, never stored.
type OpportunityLineItem struct {
	ID              int64      `json:"-"`
	OpportunitySFID string     `json:"opportunity_sf_id"`
	ProductName     string     `json:"product_name"`
	Quantity        float64    `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	TotalPrice      float64    `json:"total_price"`
	SyncedAt        *time.Time `json:"synced_at"`
}
