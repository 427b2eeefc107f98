package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes the data access layer cares about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgUndefinedColumn     = "42703"
	pgRaiseException      = "P0001"
)

// Translate performs the single translation step from a database-level
// failure to a typed application error. It is called once, at the data
// access layer; nothing retries, transient failures surface immediately.
func Translate(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConflictError{Entity: entity}
		case pgForeignKeyViolation, pgNotNullViolation:
			return &BadRequestError{Message: "wrong fields in request body"}
		case pgUndefinedColumn:
			return &UnprocessableEntityError{Message: "wrong fields in request body"}
		case pgRaiseException:
			// Raised by the rental overlap trigger.
			return &ConflictError{Entity: entity}
		}
	}

	return err
}
