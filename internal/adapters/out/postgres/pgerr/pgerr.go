// Package pgerr turns Postgres constraint failures into domain errors.
package pgerr

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes raised when a row does not fit the schema.
const (
	codeStringDataRightTruncation = "22001"
	codeCharacterNotInRepertoire  = "22021"
	codeNotNullViolation          = "23502"
	codeCheckViolation            = "23514"
)

// Translate maps schema violations to errs.ValidationError naming the offending
// column, constraint or entity. Any other error is returned unchanged.
func Translate(err error, entity string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeStringDataRightTruncation, codeCharacterNotInRepertoire, codeNotNullViolation, codeCheckViolation:
	default:
		return err
	}

	field := entity
	switch {
	case pgErr.ColumnName != "":
		field = pgErr.ColumnName
	case pgErr.ConstraintName != "":
		field = pgErr.ConstraintName
	}
	return errs.NewValidationError(field)
}
