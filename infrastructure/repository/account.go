package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

const accountsTable = "accounts"

type AccountRepository interface {
	GetAll() ([]*domain.Account, error)
	Count() (int, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) GetAll() ([]*domain.Account, error) {
	query, args, err := squirrel.
		Select("sf_id, name, type, status, industry, annual_revenue, number_of_employees, billing_country, billing_city, billing_state, phone, website, segment, created_date, synced_at").
		From(accountsTable).
		OrderBy("name ASC").
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

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := r.scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) Count() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(accountsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting accounts: %w", err)
	}

	return count, nil
}

func (r *accountRepository) scanAccount(rows *sql.Rows) (*domain.Account, error) {
	account := &domain.Account{}

	var (
		accountType       sql.NullString
		status            sql.NullString
		industry          sql.NullString
		annualRevenue     sql.NullFloat64
		numberOfEmployees sql.NullInt64
		billingCountry    sql.NullString
		billingCity       sql.NullString
		billingState      sql.NullString
		phone             sql.NullString
		website           sql.NullString
		segment           sql.NullString
		createdDate       sql.NullTime
		syncedAt          sql.NullTime
	)

	err := rows.Scan(
		&account.SFID,
		&account.Name,
		&accountType,
		&status,
		&industry,
		&annualRevenue,
		&numberOfEmployees,
		&billingCountry,
		&billingCity,
		&billingState,
		&phone,
		&website,
		&segment,
		&createdDate,
		&syncedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Type = accountType.String
	account.Status = status.String
	account.Industry = industry.String
	account.BillingCountry = billingCountry.String
	account.BillingCity = billingCity.String
	account.BillingState = billingState.String
	account.Phone = phone.String
	account.Website = website.String
	account.Segment = segment.String

	if annualRevenue.Valid {
		account.AnnualRevenue = &annualRevenue.Float64
	}
	if numberOfEmployees.Valid {
		n := int(numberOfEmployees.Int64)
		account.NumberOfEmployees = &n
	}
	if createdDate.Valid {
		account.CreatedDate = &createdDate.Time
	}
	if syncedAt.Valid {
		account.SyncedAt = &syncedAt.Time
	}

	return account, nil
}
