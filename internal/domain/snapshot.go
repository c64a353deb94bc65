package domain

import "time"

// SalesforceEODSnapshot is a once-daily, immutable capture of all synced
// Salesforce state. SnapshotDate is the day in the business time zone (one row
// per day, re-snapshotting overwrites); Data holds the encoded payload.
type SalesforceEODSnapshot struct {
	ID           int64
	SnapshotDate time.Time
	SnapshotUTC  time.Time
	Data         []byte
}

// SheetSnapshot stores the contents of a Google Sheet range after a sync
type SheetSnapshot struct {
	ID        int64
	Source    string
	RangeName string
	AsOf      time.Time
	Data      []byte
}

// QuickBooksReportSnapshot stores a raw QuickBooks report payload
type QuickBooksReportSnapshot struct {
	ID         int64
	ReportType string
	AsOf       time.Time
	Data       []byte
}
