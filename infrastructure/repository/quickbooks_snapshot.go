package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

const quickbooksSnapshotsTable = "quickbooks_report_snapshots"

type QuickBooksSnapshotRepository interface {
	Save(snapshot *domain.QuickBooksReportSnapshot) error
	GetLatest(reportType string) (*domain.QuickBooksReportSnapshot, error)
}

type quickbooksSnapshotRepository struct {
	conn *postgres.Connection
}

func NewQuickBooksSnapshotRepository(conn *postgres.Connection) QuickBooksSnapshotRepository {
	return &quickbooksSnapshotRepository{
		conn: conn,
	}
}

func (r *quickbooksSnapshotRepository) Save(snapshot *domain.QuickBooksReportSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(quickbooksSnapshotsTable).
		Columns("report_type", "as_of", "data").
		Values(
			snapshot.ReportType,
			snapshot.AsOf,
			snapshot.Data,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error saving quickbooks snapshot: %w", err)
	}

	return nil
}

func (r *quickbooksSnapshotRepository) GetLatest(reportType string) (*domain.QuickBooksReportSnapshot, error) {
	query, args, err := squirrel.
		Select("id, report_type, as_of, data").
		From(quickbooksSnapshotsTable).
		Where(squirrel.Eq{"report_type": reportType}).
		OrderBy("as_of DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	snapshot := &domain.QuickBooksReportSnapshot{}
	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.ReportType,
		&snapshot.AsOf,
		&snapshot.Data,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning quickbooks snapshot: %w", err)
	}

	return snapshot, nil
}
