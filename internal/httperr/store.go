package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes the API knows how to translate. Everything else
// surfaces as a 500.
const (
	pgInvalidTextRepresentation = "22P02"
	pgUniqueViolation           = "23505"
	pgForeignKeyViolation       = "23503"
)

// FromStore maps a persistence-layer error to the taxonomy. notFoundMsg
// is used when the row simply does not exist.
func FromStore(err error, notFoundMsg string) *AppError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundMsg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			return Validation("invalid data format")
		case pgUniqueViolation:
			field := pgErr.ColumnName
			if field == "" {
				field = "value"
			}
			return Conflict(fmt.Sprintf("%s already in use", field))
		case pgForeignKeyViolation:
			return Validation("invalid reference to related record")
		}
	}

	return Internal("internal server error")
}
