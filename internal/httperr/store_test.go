package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromStoreRecordNotFound(t *testing.T) {
	app := FromStore(gorm.ErrRecordNotFound, "service order not found")

	assert.Equal(t, 404, app.Status)
	assert.Equal(t, "service order not found", app.Message)
}

func TestFromStorePostgresCodes(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "invalid text representation",
			err:     &pgconn.PgError{Code: "22P02"},
			status:  400,
			message: "invalid data format",
		},
		{
			name:    "unique violation with column",
			err:     &pgconn.PgError{Code: "23505", ColumnName: "email"},
			status:  409,
			message: "email already in use",
		},
		{
			name:    "unique violation without column",
			err:     &pgconn.PgError{Code: "23505"},
			status:  409,
			message: "value already in use",
		},
		{
			name:    "foreign key violation",
			err:     &pgconn.PgError{Code: "23503"},
			status:  400,
			message: "invalid reference to related record",
		},
		{
			name:    "unknown pg code",
			err:     &pgconn.PgError{Code: "57014"},
			status:  500,
			message: "internal server error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := FromStore(tc.err, "not found")
			assert.Equal(t, tc.status, app.Status)
			assert.Equal(t, tc.message, app.Message)
		})
	}
}

// O erro original pode vir embrulhado pelo driver ou pelo gorm.
func TestFromStoreUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("insert clients: %w", &pgconn.PgError{
		Code:       "23505",
		ColumnName: "email",
	})

	app := FromStore(wrapped, "not found")
	assert.Equal(t, 409, app.Status)
	assert.Equal(t, "email already in use", app.Message)
}

func TestFromStoreUnknownErrorIsInternal(t *testing.T) {
	app := FromStore(errors.New("connection refused"), "not found")

	assert.Equal(t, 500, app.Status)
	// Nunca vazamos detalhe do driver na mensagem.
	assert.Equal(t, "internal server error", app.Message)
}
