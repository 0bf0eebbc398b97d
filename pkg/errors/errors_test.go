package errorsUtils_test

import (
	"errors"
	"fmt"
	"testing"

	errorsUtils "github.com/Egor213/LogHandler/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapPathErr(t *testing.T) {
	base := errors.New("boom")
	wrapped := errorsUtils.WrapPathErr(base)

	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "TestWrapPathErr")
	assert.Nil(t, errorsUtils.WrapPathErr(nil))
}

func TestPgCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: errorsUtils.CodeUniqueViolation})
	fk := &pgconn.PgError{Code: errorsUtils.CodeForeignKeyViolation}

	assert.True(t, errorsUtils.IsUniqueViolation(unique))
	assert.False(t, errorsUtils.IsForeignKeyViolation(unique))
	assert.True(t, errorsUtils.IsForeignKeyViolation(fk))
	assert.False(t, errorsUtils.IsUniqueViolation(errors.New("plain")))
}
