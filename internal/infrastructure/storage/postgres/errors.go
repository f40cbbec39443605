package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"storecatalog/internal/core/apperror"
)

// PostgreSQL error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// uniqueColumns maps unique constraint names to the entity and field they guard.
var uniqueColumns = map[string][2]string{
	"cat_suppliers_email_key": {"supplier", "email"},
}

// TranslateError converts driver errors into AppError where a mapping exists.
// value is reported in the details of a duplicate error.
func TranslateError(err error, value string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if target, ok := uniqueColumns[pgErr.ConstraintName]; ok {
			return apperror.NewDuplicate(target[0], target[1], value).WithCause(err)
		}
		return apperror.NewConflict("record already exists").
			WithDetail("constraint", pgErr.ConstraintName).
			WithCause(err)
	case pgForeignKeyViolation:
		return apperror.NewConflict("record is referenced by other records").
			WithDetail("constraint", pgErr.ConstraintName).
			WithCause(err)
	}
	return apperror.NewInternal(err).WithDetail("sqlstate", pgErr.Code)
}
