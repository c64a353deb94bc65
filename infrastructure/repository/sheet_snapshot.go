package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

const sheetSnapshotsTable = "sheet_snapshots"

type SheetSnapshotRepository interface {
	Save(snapshot *domain.SheetSnapshot) error
	GetLatestByRange(rangeName string) (*domain.SheetSnapshot, error)
}

type sheetSnapshotRepository struct {
	conn *postgres.Connection
}

func NewSheetSnapshotRepository(conn *postgres.Connection) SheetSnapshotRepository {
	return &sheetSnapshotRepository{
		conn: conn,
	}
}

func (r *sheetSnapshotRepository) Save(snapshot *domain.SheetSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(sheetSnapshotsTable).
		Columns("source", "range_name", "as_of", "data").
		Values(
			snapshot.Source,
			snapshot.RangeName,
			snapshot.AsOf,
			snapshot.Data,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error saving sheet snapshot: %w", err)
	}

	return nil
}

func (r *sheetSnapshotRepository) GetLatestByRange(rangeName string) (*domain.SheetSnapshot, error) {
	query, args, err := squirrel.
		Select("id, source, range_name, as_of, data").
		From(sheetSnapshotsTable).
		Where(squirrel.Eq{"range_name": rangeName}).
		OrderBy("as_of DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	snapshot := &domain.SheetSnapshot{}
	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.Source,
		&snapshot.RangeName,
		&snapshot.AsOf,
		&snapshot.Data,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning sheet snapshot: %w", err)
	}

	return snapshot, nil
}
