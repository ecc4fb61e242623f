package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/clientbook/clientbook/internal/domain"
)

// SetupMockDB creates a mock database connection for testing
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return db, mock, cleanup
}

// ClientRows builds the result of a client select
func ClientRows(clients ...domain.Client) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"})
	for _, c := range clients {
		rows.AddRow(c.ID, c.FirstName, c.LastName, c.Email)
	}
	return rows
}

// PhoneRows builds the result of a phone select
func PhoneRows(phones ...domain.Phone) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "client_id", "phone_number"})
	for _, p := range phones {
		rows.AddRow(p.ID, p.ClientID, p.PhoneNumber)
	}
	return rows
}
