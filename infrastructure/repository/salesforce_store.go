package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

type SalesforceStoreRepository interface {
	ReplaceAll(accounts []*domain.Account, opportunities []*domain.Opportunity, lineItems []*domain.OpportunityLineItem) error
}

type salesforceStoreRepository struct {
	conn *postgres.Connection
}

func NewSalesforceStoreRepository(conn *postgres.Connection) SalesforceStoreRepository {
	return &salesforceStoreRepository{
		conn: conn,
	}
}

// ReplaceAll swaps all three Salesforce tables for the given set inside one
// transaction, so a failure on any entity leaves the previous cycle intact.
func (r *salesforceStoreRepository) ReplaceAll(accounts []*domain.Account, opportunities []*domain.Opportunity, lineItems []*domain.OpportunityLineItem) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, table := range []string{opportunityLineItemsTable, opportunitiesTable, accountsTable} {
			deleteQuery, deleteArgs, err := squirrel.
				Delete(table).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("error building delete query: %w", err)
			}

			if _, err := tx.Exec(deleteQuery, deleteArgs...); err != nil {
				return fmt.Errorf("error deleting from %s: %w", table, err)
			}
		}

		if err := r.insertAccounts(tx, accounts); err != nil {
			return err
		}
		if err := r.insertOpportunities(tx, opportunities); err != nil {
			return err
		}
		return r.insertLineItems(tx, lineItems)
	})
}

func (r *salesforceStoreRepository) insertAccounts(tx *sql.Tx, accounts []*domain.Account) error {
	for _, account := range accounts {
		insertQuery, insertArgs, err := squirrel.
			Insert(accountsTable).
			Columns("sf_id", "name", "type", "status", "industry", "annual_revenue", "number_of_employees", "billing_country", "billing_city", "billing_state", "phone", "website", "segment", "created_date", "synced_at").
			Values(
				account.SFID,
				account.Name,
				account.Type,
				account.Status,
				account.Industry,
				account.AnnualRevenue,
				account.NumberOfEmployees,
				account.BillingCountry,
				account.BillingCity,
				account.BillingState,
				account.Phone,
				account.Website,
				account.Segment,
				account.CreatedDate,
				account.SyncedAt,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building insert query: %w", err)
		}

		if _, err := tx.Exec(insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("error inserting account %s: %w", account.SFID, err)
		}
	}

	return nil
}

func (r *salesforceStoreRepository) insertOpportunities(tx *sql.Tx, opportunities []*domain.Opportunity) error {
	for _, opportunity := range opportunities {
		insertQuery, insertArgs, err := squirrel.
			Insert(opportunitiesTable).
			Columns("sf_id", "name", "amount", "close_date", "stage_name", "type", "record_type_name", "account_id", "account_name", "created_date", "synced_at").
			Values(
				opportunity.SFID,
				opportunity.Name,
				opportunity.Amount,
				opportunity.CloseDate,
				opportunity.StageName,
				opportunity.Type,
				opportunity.RecordTypeName,
				opportunity.AccountID,
				opportunity.AccountName,
				opportunity.CreatedDate,
				opportunity.SyncedAt,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building insert query: %w", err)
		}

		if _, err := tx.Exec(insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("error inserting opportunity %s: %w", opportunity.SFID, err)
		}
	}

	return nil
}

func (r *salesforceStoreRepository) insertLineItems(tx *sql.Tx, lineItems []*domain.OpportunityLineItem) error {
	for _, lineItem := range lineItems {
		insertQuery, insertArgs, err := squirrel.
			Insert(opportunityLineItemsTable).
			Columns("opportunity_sf_id", "product_name", "quantity", "unit_price", "total_price", "synced_at").
			Values(
				lineItem.OpportunitySFID,
				lineItem.ProductName,
				lineItem.Quantity,
				lineItem.UnitPrice,
				lineItem.TotalPrice,
				lineItem.SyncedAt,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building insert query: %w", err)
		}

		if _, err := tx.Exec(insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("error inserting line item for opportunity %s: %w", lineItem.OpportunitySFID, err)
		}
	}

	return nil
}
