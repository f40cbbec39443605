package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"storecatalog/internal/core/apperror"
)

func TestTranslateError(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Same(t, plain, TranslateError(plain, ""))

	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "cat_suppliers_email_key"})
	err := TranslateError(dup, "info@romashka.ru")
	assert.True(t, apperror.IsDuplicate(err))
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "email", appErr.Field())

	other := &pgconn.PgError{Code: "23505", ConstraintName: "cat_stores_pkey"}
	assert.True(t, apperror.HasCode(TranslateError(other, ""), apperror.CodeConflict))

	fk := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, 409, apperror.GetHTTPStatus(TranslateError(fk, "")))

	unknown := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, 500, apperror.GetHTTPStatus(TranslateError(unknown, "")))
}
