package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

const opportunitiesTable = "opportunities"

type OpportunityRepository interface {
	GetAll() ([]*domain.Opportunity, error)
	Count() (int, error)
}

type opportunityRepository struct {
	conn *postgres.Connection
}

func NewOpportunityRepository(conn *postgres.Connection) OpportunityRepository {
	return &opportunityRepository{
		conn: conn,
	}
}

func (r *opportunityRepository) GetAll() ([]*domain.Opportunity, error) {
	query, args, err := squirrel.
		Select("sf_id, name, amount, close_date, stage_name, type, record_type_name, account_id, account_name, created_date, synced_at").
		From(opportunitiesTable).
		OrderBy("close_date DESC NULLS LAST", "id DESC").
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

	opportunities := make([]*domain.Opportunity, 0)
	for rows.Next() {
		opportunity, err := r.scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning opportunity: %w", err)
		}
		opportunities = append(opportunities, opportunity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return opportunities, nil
}

func (r *opportunityRepository) Count() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(opportunitiesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting opportunities: %w", err)
	}

	return count, nil
}

func (r *opportunityRepository) scanOpportunity(rows *sql.Rows) (*domain.Opportunity, error) {
	opportunity := &domain.Opportunity{}

	var (
		name           sql.NullString
		amount         sql.NullFloat64
		closeDate      sql.NullTime
		stageName      sql.NullString
		oppType        sql.NullString
		recordTypeName sql.NullString
		accountID      sql.NullString
		accountName    sql.NullString
		createdDate    sql.NullTime
		syncedAt       sql.NullTime
	)

	err := rows.Scan(
		&opportunity.SFID,
		&name,
		&amount,
		&closeDate,
		&stageName,
		&oppType,
		&recordTypeName,
		&accountID,
		&accountName,
		&createdDate,
		&syncedAt,
	)
	if err != nil {
		return nil, err
	}

	opportunity.Name = name.String
	opportunity.Amount = amount.Float64
	opportunity.StageName = stageName.String
	opportunity.Type = oppType.String
	opportunity.RecordTypeName = recordTypeName.String
	opportunity.AccountID = accountID.String
	opportunity.AccountName = accountName.String

	if closeDate.Valid {
		opportunity.CloseDate = &closeDate.Time
	}
	if createdDate.Valid {
		opportunity.CreatedDate = &createdDate.Time
	}
	if syncedAt.Valid {
		opportunity.SyncedAt = &syncedAt.Time
	}

	return opportunity, nil
}
