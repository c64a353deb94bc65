package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

const eodSnapshotsTable = "salesforce_eod_snapshots"

type EODSnapshotRepository interface {
	SaveOrReplace(snapshot *domain.SalesforceEODSnapshot) error
	GetByDate(date time.Time) (*domain.SalesforceEODSnapshot, error)
	GetLatestBefore(date time.Time) (*domain.SalesforceEODSnapshot, error)
	ListDates() ([]time.Time, error)
}

type eodSnapshotRepository struct {
	conn *postgres.Connection
}

func NewEODSnapshotRepository(conn *postgres.Connection) EODSnapshotRepository {
	return &eodSnapshotRepository{
		conn: conn,
	}
}

// SaveOrReplace stores a snapshot, overwriting any previous capture for the
// same business date
func (r *eodSnapshotRepository) SaveOrReplace(snapshot *domain.SalesforceEODSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(eodSnapshotsTable).
		Columns("snapshot_date", "snapshot_utc", "data").
		Values(
			snapshot.SnapshotDate.Format(time.DateOnly),
			snapshot.SnapshotUTC,
			snapshot.Data,
		).
		Suffix(`
			ON CONFLICT (snapshot_date) DO UPDATE SET
				snapshot_utc = EXCLUDED.snapshot_utc,
				data = EXCLUDED.data
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error saving snapshot: %w", err)
	}

	return nil
}

func (r *eodSnapshotRepository) GetByDate(date time.Time) (*domain.SalesforceEODSnapshot, error) {
	query, args, err := squirrel.
		Select("id, snapshot_date, snapshot_utc, data").
		From(eodSnapshotsTable).
		Where(squirrel.Eq{"snapshot_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.scanSnapshot(r.conn.QueryRow(query, args...))
}

// GetLatestBefore returns the most recent snapshot strictly before the given
// date, or nil when none exists
func (r *eodSnapshotRepository) GetLatestBefore(date time.Time) (*domain.SalesforceEODSnapshot, error) {
	query, args, err := squirrel.
		Select("id, snapshot_date, snapshot_utc, data").
		From(eodSnapshotsTable).
		Where(squirrel.Lt{"snapshot_date": date.Format(time.DateOnly)}).
		OrderBy("snapshot_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.scanSnapshot(r.conn.QueryRow(query, args...))
}

func (r *eodSnapshotRepository) ListDates() ([]time.Time, error) {
	query, args, err := squirrel.
		Select("snapshot_date").
		From(eodSnapshotsTable).
		OrderBy("snapshot_date DESC").
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

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("error scanning snapshot date: %w", err)
		}
		dates = append(dates, date)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return dates, nil
}

func (r *eodSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.SalesforceEODSnapshot, error) {
	snapshot := &domain.SalesforceEODSnapshot{}

	err := row.Scan(
		&snapshot.ID,
		&snapshot.SnapshotDate,
		&snapshot.SnapshotUTC,
		&snapshot.Data,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning snapshot: %w", err)
	}

	return snapshot, nil
}
