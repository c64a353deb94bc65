package domain

import "time"

// Account is a Salesforce account row from the last sync.
// Rows are bulk-replaced on every sync cycle; history lives only in EOD snapshots.
type Account struct {
	ID                int64      `json:"-"`
	SFID              string     `json:"sf_id"`
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	Industry          string     `json:"industry"`
	AnnualRevenue     *float64   `json:"annual_revenue"`
	NumberOfEmployees *int       `json:"number_of_employees"`
	BillingCountry    string     `json:"billing_country"`
	BillingCity       string     `json:"billing_city"`
	BillingState      string     `json:"billing_state"`
	Phone             string     `json:"phone"`
	Website           string     `json:"website"`
	Segment           string     `json:"segment"`
	CreatedDate       *time.Time `json:"created_date"`
	SyncedAt          *time.Time `json:"synced_at"`
}
