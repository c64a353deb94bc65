package handler

import (
	"net/http"
	"time"

	"github.com/dazos/cfo-copilot-api/internal/usecases/reporting"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

const (
	defaultAccountsLimit      = 500
	maxAccountsLimit          = 5000
	defaultOpportunitiesLimit = 500
	maxOpportunitiesLimit     = 2000
)

// opportunityListItem is the trimmed listing view of an opportunity
type opportunityListItem struct {
	SFID           string     `json:"sf_id"`
	Name           string     `json:"name"`
	Amount         float64    `json:"amount"`
	CloseDate      *string    `json:"close_date"`
	StageName      string     `json:"stage_name"`
	Type           string     `json:"type"`
	RecordTypeName string     `json:"record_type_name"`
	AccountName    string     `json:"account_name"`
	SyncedAt       *time.Time `json:"synced_at"`
}

func ListAccounts(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := parseLimit(r.URL.Query().Get("limit"), defaultAccountsLimit, maxAccountsLimit)

		accounts, err := service.ListAccounts(limit)
		if err != nil {
			logger.WithField("error", err.Error()).Error("listings: failed to list accounts")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, accounts)
	})
}

func ListOpportunities(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := parseLimit(r.URL.Query().Get("limit"), defaultOpportunitiesLimit, maxOpportunitiesLimit)
		stage := r.URL.Query().Get("stage")

		opportunities, err := service.ListOpportunities(limit, stage)
		if err != nil {
			logger.WithFields(log.Fields{
				"stage": stage,
				"error": err.Error(),
			}).Error("listings: failed to list opportunities")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		items := make([]*opportunityListItem, 0, len(opportunities))
		for _, o := range opportunities {
			var closeDate *string
			if o.CloseDate != nil {
				formatted := o.CloseDate.Format(time.DateOnly)
				closeDate = &formatted
			}
			items = append(items, &opportunityListItem{
				SFID:           o.SFID,
				Name:           o.Name,
				Amount:         o.Amount,
				CloseDate:      closeDate,
				StageName:      o.StageName,
				Type:           o.Type,
				RecordTypeName: o.RecordTypeName,
				AccountName:    o.AccountName,
				SyncedAt:       o.SyncedAt,
			})
		}

		writeJSON(w, logger, items)
	})
}
