package domain

import "time"

// ARRReport is the ARR-by-account-product table for open renewal
// opportunities. Products holds the column order (canonical categories plus
// the trailing "Other" bucket); rows are sorted by TotalARR descending.
type ARRReport struct {
	Products       []string           `json:"products"`
	Rows           []*ARRAccountRow   `json:"rows"`
	TotalByProduct map[string]float64 `json:"total_by_product"`
	GrandTotal     float64            `json:"grand_total"`
}

// ARRAccountRow is one account's ARR broken out by product column.
// SubscriptionEndDate is the latest close date among the account's open
// renewal opportunities, nil when none carries a close date.
type ARRAccountRow struct {
	AccountID           string             `json:"account_id"`
	AccountName         string             `json:"account_name"`
	Segment             string             `json:"segment"`
	SubscriptionEndDate *time.Time         `json:"subscription_end_date"`
	ByProduct           map[string]float64 `json:"by_product"`
	TotalARR            float64            `json:"total_arr"`
}

// ARRAccountSummary is the per-account rollup without product columns
type ARRAccountSummary struct {
	AccountID        string  `json:"account_id"`
	AccountName      string  `json:"account_name"`
	OpenRenewalCount int     `json:"open_renewal_count"`
	ARR              float64 `json:"arr"`
}

// RenewalARRSplit breaks renewal ARR into open vs closed-won, with example
// opportunities for each bucket
type RenewalARRSplit struct {
	OpenRenewalARR      float64           `json:"open_renewal_arr"`
	ClosedWonRenewalARR float64           `json:"closed_won_renewal_arr"`
	TotalRenewalARR     float64           `json:"total_renewal_arr"`
	OpenExamples        []*RenewalExample `json:"open_examples"`
	ClosedWonExamples   []*RenewalExample `json:"closed_won_examples"`
	Note                string            `json:"note"`
}

// RenewalExample is a sample opportunity in an ARR split bucket.
// LineItemTotal is annualized (ARR, not MRR).
type RenewalExample struct {
	Name          string  `json:"name"`
	StageName     string  `json:"stage_name"`
	LineItemTotal float64 `json:"line_item_total"`
	SFID          string  `json:"sf_id"`
}

// DashboardKPI is the Salesforce headline view: ARR over open renewals and
// pipeline over all open opportunities
type DashboardKPI struct {
	ARR                float64    `json:"arr"`
	Pipeline           float64    `json:"pipeline"`
	SalesforceSyncedAt *time.Time `json:"salesforce_synced_at"`
}
