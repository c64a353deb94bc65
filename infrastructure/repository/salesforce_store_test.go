package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/internal/domain"
)

func newMockedSalesforceStoreRepository(t *testing.T) (SalesforceStoreRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSalesforceStoreRepository(&postgres.Connection{DB: db}), mock
}

func TestSalesforceStoreReplaceAll(t *testing.T) {
	repo, mock := newMockedSalesforceStoreRepository(t)

	accounts := []*domain.Account{
		{SFID: "ACC1", Name: "Acme Treatment"},
		{SFID: "ACC2", Name: "Beta Health"},
	}
	opportunities := []*domain.Opportunity{
		{SFID: "OPP1", AccountID: "ACC1", StageName: "Negotiation"},
	}
	lineItems := []*domain.OpportunityLineItem{
		{OpportunitySFID: "OPP1", ProductName: "Premium Support", TotalPrice: 300},
	}

	// Children are deleted first, parents inserted first.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM opportunity_line_items").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM opportunities").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM accounts").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO accounts").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO accounts").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO opportunities").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO opportunity_line_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(accounts, opportunities, lineItems))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure partway through the cycle rolls back everything, including
// account rows already swapped in the same transaction.
func TestSalesforceStoreReplaceAllRollsBackWholeCycle(t *testing.T) {
	repo, mock := newMockedSalesforceStoreRepository(t)

	accounts := []*domain.Account{{SFID: "ACC1", Name: "Acme Treatment"}}
	opportunities := []*domain.Opportunity{{SFID: "OPP1", AccountID: "ACC1"}}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM opportunity_line_items").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM opportunities").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM accounts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO accounts").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO opportunities").
		WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(accounts, opportunities, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error inserting opportunity OPP1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
