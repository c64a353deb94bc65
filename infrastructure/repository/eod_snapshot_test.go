package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

func newMockedEODSnapshotRepository(t *testing.T) (EODSnapshotRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewEODSnapshotRepository(&postgres.Connection{DB: db}), mock
}

func TestEODSnapshotRepositorySaveOrReplace(t *testing.T) {
	repo, mock := newMockedEODSnapshotRepository(t)

	snapshotUTC := time.Date(2025, time.July, 16, 3, 59, 59, 0, time.UTC)
	snapshot := &domain.SalesforceEODSnapshot{
		SnapshotDate: time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
		SnapshotUTC:  snapshotUTC,
		Data:         []byte(`{"version":1}`),
	}

	mock.ExpectExec("INSERT INTO salesforce_eod_snapshots").
		WithArgs("2025-07-15", snapshotUTC, []byte(`{"version":1}`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveOrReplace(snapshot))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEODSnapshotRepositoryGetByDate(t *testing.T) {
	repo, mock := newMockedEODSnapshotRepository(t)

	snapshotDate := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	snapshotUTC := time.Date(2025, time.July, 16, 3, 59, 59, 0, time.UTC)

	mock.ExpectQuery("SELECT id, snapshot_date, snapshot_utc, data FROM salesforce_eod_snapshots WHERE snapshot_date = ").
		WithArgs("2025-07-15").
		WillReturnRows(sqlmock.NewRows([]string{"id", "snapshot_date", "snapshot_utc", "data"}).
			AddRow(7, snapshotDate, snapshotUTC, []byte(`{"version":1}`)))

	snapshot, err := repo.GetByDate(snapshotDate)

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, int64(7), snapshot.ID)
	assert.Equal(t, snapshotDate, snapshot.SnapshotDate)
	assert.Equal(t, []byte(`{"version":1}`), snapshot.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEODSnapshotRepositoryGetByDateNotFound(t *testing.T) {
	repo, mock := newMockedEODSnapshotRepository(t)

	mock.ExpectQuery("SELECT id, snapshot_date, snapshot_utc, data FROM salesforce_eod_snapshots").
		WithArgs("2025-07-15").
		WillReturnRows(sqlmock.NewRows([]string{"id", "snapshot_date", "snapshot_utc", "data"}))

	snapshot, err := repo.GetByDate(time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Nil(t, snapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEODSnapshotRepositoryGetLatestBefore(t *testing.T) {
	repo, mock := newMockedEODSnapshotRepository(t)

	snapshotDate := time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC)
	snapshotUTC := time.Date(2025, time.July, 15, 3, 59, 59, 0, time.UTC)

	mock.ExpectQuery("SELECT id, snapshot_date, snapshot_utc, data FROM salesforce_eod_snapshots WHERE snapshot_date < (.+) ORDER BY snapshot_date DESC LIMIT 1").
		WithArgs("2025-07-15").
		WillReturnRows(sqlmock.NewRows([]string{"id", "snapshot_date", "snapshot_utc", "data"}).
			AddRow(6, snapshotDate, snapshotUTC, []byte(`{"version":1}`)))

	snapshot, err := repo.GetLatestBefore(time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, snapshotDate, snapshot.SnapshotDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEODSnapshotRepositoryListDates(t *testing.T) {
	repo, mock := newMockedEODSnapshotRepository(t)

	first := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT snapshot_date FROM salesforce_eod_snapshots ORDER BY snapshot_date DESC").
		WillReturnRows(sqlmock.NewRows([]string{"snapshot_date"}).
			AddRow(first).
			AddRow(second))

	dates, err := repo.ListDates()

	require.NoError(t, err)
	assert.Equal(t, []time.Time{first, second}, dates)
	assert.NoError(t, mock.ExpectationsWereMet())
}
