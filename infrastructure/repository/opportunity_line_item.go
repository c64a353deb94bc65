package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

const opportunityLineItemsTable = "opportunity_line_items"

type OpportunityLineItemRepository interface {
	GetAll() ([]*domain.OpportunityLineItem, error)
}

type opportunityLineItemRepository struct {
	conn *postgres.Connection
}

func NewOpportunityLineItemRepository(conn *postgres.Connection) OpportunityLineItemRepository {
	return &opportunityLineItemRepository{
		conn: conn,
	}
}

func (r *opportunityLineItemRepository) GetAll() ([]*domain.OpportunityLineItem, error) {
	query, args, err := squirrel.
		Select("opportunity_sf_id, product_name, quantity, unit_price, total_price, synced_at").
		From(opportunityLineItemsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	lineItems := make([]*domain.OpportunityLineItem, 0)
	for rows.Next() {
		lineItem, err := r.scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning line item: %w", err)
		}
		lineItems = append(lineItems, lineItem)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lineItems, nil
}

func (r *opportunityLineItemRepository) scanLineItem(rows *sql.Rows) (*domain.OpportunityLineItem, error) {
	lineItem := &domain.OpportunityLineItem{}

	var (
		productName sql.NullString
		quantity    sql.NullFloat64
		unitPrice   sql.NullFloat64
		totalPrice  sql.NullFloat64
		syncedAt    sql.NullTime
	)

	err := rows.Scan(
		&lineItem.OpportunitySFID,
		&productName,
		&quantity,
		&unitPrice,
		&totalPrice,
		&syncedAt,
	)
	if err != nil {
		return nil, err
	}

	lineItem.ProductName = productName.String
	lineItem.Quantity = quantity.Float64
	lineItem.UnitPrice = unitPrice.Float64
	lineItem.TotalPrice = totalPrice.Float64

	if syncedAt.Valid {
		lineItem.SyncedAt = &syncedAt.Time
	}

	return lineItem, nil
}
