package snapshotting

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/dazos/cfo-copilot-api/internal/domain"
	"github.com/dazos/cfo-copilot-api/internal/usecases/reporting"
	"github.com/dazos/cfo-copilot-api/pkg/utils"
)

// PayloadVersion identifies the snapshot schema. Version 1 is the original
// {accounts, opportunities, opportunity_line_items} layout with ISO-8601
// text for all temporal fields.
const PayloadVersion = 1

// Payload is the self-describing snapshot body. Its field names and date
// encoding are a compatibility contract: snapshots must stay decodable
// without the live store's schema.
type Payload struct {
	Version              int                  `json:"version,omitempty"`
	Accounts             []*AccountRecord     `json:"accounts"`
	Opportunities        []*OpportunityRecord `json:"opportunities"`
	OpportunityLineItems []*LineItemRecord    `json:"opportunity_line_items"`
}

// AccountRecord is the flat snapshot form of an account. Segment is stored
// with the read-time default already applied, matching historical payloads.
type AccountRecord struct {
	SFID              string   `json:"sf_id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Status            string   `json:"status"`
	Segment           string   `json:"segment"`
	Industry          string   `json:"industry"`
	AnnualRevenue     *float64 `json:"annual_revenue"`
	NumberOfEmployees *int     `json:"number_of_employees"`
	BillingCountry    string   `json:"billing_country"`
	BillingCity       string   `json:"billing_city"`
	BillingState      string   `json:"billing_state"`
	Phone             string   `json:"phone"`
	Website           string   `json:"website"`
	CreatedDate       *string  `json:"created_date"`
	SyncedAt          *string  `json:"synced_at"`
}

// OpportunityRecord is the flat snapshot form of an opportunity
type OpportunityRecord struct {
	SFID           string  `json:"sf_id"`
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	CloseDate      *string `json:"close_date"`
	StageName      string  `json:"stage_name"`
	Type           string  `json:"type"`
	RecordTypeName string  `json:"record_type_name"`
	AccountID      string  `json:"account_id"`
	AccountName    string  `json:"account_name"`
	CreatedDate    *string `json:"created_date"`
	SyncedAt       *string `json:"synced_at"`
}

// LineItemRecord is the flat snapshot form of an opportunity line item.
// TotalPrice stays monthly (MRR); annualization is never stored.
type LineItemRecord struct {
	OpportunitySFID string  `json:"opportunity_sf_id"`
	ProductName     string  `json:"product_name"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	TotalPrice      float64 `json:"total_price"`
	SyncedAt        *string `json:"synced_at"`
}

// Encode serializes a full copy of the synced Salesforce state into a
// snapshot payload
func Encode(
	accounts []*domain.Account,
	opportunities []*domain.Opportunity,
	lineItems []*domain.OpportunityLineItem,
) ([]byte, error) {
	payload := &Payload{
		Version:              PayloadVersion,
		Accounts:             make([]*AccountRecord, 0, len(accounts)),
		Opportunities:        make([]*OpportunityRecord, 0, len(opportunities)),
		OpportunityLineItems: make([]*LineItemRecord, 0, len(lineItems)),
	}

	for _, a := range accounts {
		payload.Accounts = append(payload.Accounts, &AccountRecord{
			SFID:              a.SFID,
			Name:              a.Name,
			Type:              a.Type,
			Status:            a.Status,
			Segment:           reporting.EffectiveSegment(a.Segment),
			Industry:          a.Industry,
			AnnualRevenue:     a.AnnualRevenue,
			NumberOfEmployees: a.NumberOfEmployees,
			BillingCountry:    a.BillingCountry,
			BillingCity:       a.BillingCity,
			BillingState:      a.BillingState,
			Phone:             a.Phone,
			Website:           a.Website,
			CreatedDate:       isoDateTime(a.CreatedDate),
			SyncedAt:          isoDateTime(a.SyncedAt),
		})
	}

	for _, o := range opportunities {
		payload.Opportunities = append(payload.Opportunities, &OpportunityRecord{
			SFID:           o.SFID,
			Name:           o.Name,
			Amount:         o.Amount,
			CloseDate:      isoDate(o.CloseDate),
			StageName:      o.StageName,
			Type:           o.Type,
			RecordTypeName: o.RecordTypeName,
			AccountID:      o.AccountID,
			AccountName:    o.AccountName,
			CreatedDate:    isoDateTime(o.CreatedDate),
			SyncedAt:       isoDateTime(o.SyncedAt),
		})
	}

	for _, li := range lineItems {
		payload.OpportunityLineItems = append(payload.OpportunityLineItems, &LineItemRecord{
			OpportunitySFID: li.OpportunitySFID,
			ProductName:     li.ProductName,
			Quantity:        li.Quantity,
			UnitPrice:       li.UnitPrice,
			TotalPrice:      li.TotalPrice,
			SyncedAt:        isoDateTime(li.SyncedAt),
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encoding snapshot payload")
	}
	return data, nil
}

// Decode parses a snapshot payload. Field extraction is strict on shape but
// lenient on values: malformed dates become nil, missing numerics stay zero.
func Decode(data []byte) (*Payload, error) {
	payload := &Payload{}
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, errors.Wrap(err, "decoding snapshot payload")
	}
	return payload, nil
}

// ToDomain materializes the payload back into domain collections
func (p *Payload) ToDomain() ([]*domain.Account, []*domain.Opportunity, []*domain.OpportunityLineItem) {
	accounts := make([]*domain.Account, 0, len(p.Accounts))
	for _, rec := range p.Accounts {
		accounts = append(accounts, &domain.Account{
			SFID:              rec.SFID,
			Name:              rec.Name,
			Type:              rec.Type,
			Status:            rec.Status,
			Segment:           rec.Segment,
			Industry:          rec.Industry,
			AnnualRevenue:     rec.AnnualRevenue,
			NumberOfEmployees: rec.NumberOfEmployees,
			BillingCountry:    rec.BillingCountry,
			BillingCity:       rec.BillingCity,
			BillingState:      rec.BillingState,
			Phone:             rec.Phone,
			Website:           rec.Website,
			CreatedDate:       parseDateTime(rec.CreatedDate),
			SyncedAt:          parseDateTime(rec.SyncedAt),
		})
	}

	opportunities := make([]*domain.Opportunity, 0, len(p.Opportunities))
	for _, rec := range p.Opportunities {
		opportunities = append(opportunities, &domain.Opportunity{
			SFID:           rec.SFID,
			Name:           rec.Name,
			Amount:         rec.Amount,
			CloseDate:      parseDate(rec.CloseDate),
			StageName:      rec.StageName,
			Type:           rec.Type,
			RecordTypeName: rec.RecordTypeName,
			AccountID:      rec.AccountID,
			AccountName:    rec.AccountName,
			CreatedDate:    parseDateTime(rec.CreatedDate),
			SyncedAt:       parseDateTime(rec.SyncedAt),
		})
	}

	lineItems := make([]*domain.OpportunityLineItem, 0, len(p.OpportunityLineItems))
	for _, rec := range p.OpportunityLineItems {
		lineItems = append(lineItems, &domain.OpportunityLineItem{
			OpportunitySFID: rec.OpportunitySFID,
			ProductName:     rec.ProductName,
			Quantity:        rec.Quantity,
			UnitPrice:       rec.UnitPrice,
			TotalPrice:      rec.TotalPrice,
			SyncedAt:        parseDateTime(rec.SyncedAt),
		})
	}

	return accounts, opportunities, lineItems
}

// DecodeAndAggregate decodes a snapshot and recomputes the ARR table over
// its records. Given equivalent inputs it yields the exact output of
// reporting.ComputeARR over live rows, including the rounding order.
func DecodeAndAggregate(data []byte) (*domain.ARRReport, error) {
	payload, err := Decode(data)
	if err != nil {
		return nil, err
	}
	accounts, opportunities, lineItems := payload.ToDomain()
	return reporting.ComputeARR(accounts, opportunities, lineItems), nil
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func isoDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	return utils.ParseISODate(*s)
}

func parseDateTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	return utils.ParseISODateTime(*s)
}
