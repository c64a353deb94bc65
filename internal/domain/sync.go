package domain

// SyncResult is the structured outcome of a sync cycle. Connector failures
// and missing configuration are reported here, never as transport errors.
type SyncResult struct {
	OK                        bool   `json:"ok"`
	SyncID                    string `json:"sync_id,omitempty"`
	Error                     string `json:"error,omitempty"`
	SyncedAccounts            int    `json:"synced_accounts,omitempty"`
	SyncedOpportunities       int    `json:"synced_opportunities,omitempty"`
	SyncedLineItems           int    `json:"synced_line_items,omitempty"`
	RenewalOpportunitiesCount int    `json:"renewal_opportunities_count,omitempty"`
	Message                   string `json:"message,omitempty"`
}

// SheetSyncResult is the outcome of pulling one Google Sheet range
type SheetSyncResult struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
	RangeName string `json:"range_name,omitempty"`
	Rows      int    `json:"rows"`
	Message   string `json:"message,omitempty"`
}

// QuickBooksSyncResult is the outcome of pulling the QuickBooks report set
type QuickBooksSyncResult struct {
	OK      bool     `json:"ok"`
	Error   string   `json:"error,omitempty"`
	Synced  []string `json:"synced,omitempty"`
	Message string   `json:"message,omitempty"`
}

// ExportResult is the outcome of pushing the ARR report to Google Sheets
type ExportResult struct {
	OK             bool   `json:"ok"`
	Error          string `json:"error,omitempty"`
	SpreadsheetURL string `json:"spreadsheet_url,omitempty"`
	RowsWritten    int    `json:"rows_written,omitempty"`
	Message        string `json:"message,omitempty"`
}
