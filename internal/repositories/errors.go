package repositories

import (
	"errors"
	"fmt"

	apperrors "asset-system/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translatePgError maps postgres constraint violations onto the error
// taxonomy. The database constraints are the real safety net for
// uniqueness and referential integrity; service-level pre-checks only
// improve the error messages.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("constraint %s: %w", pgErr.ConstraintName, apperrors.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("constraint %s: %w", pgErr.ConstraintName, apperrors.ErrBadRequest)
		}
	}
	return err
}
