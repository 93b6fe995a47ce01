package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, isUniqueConstraintViolation(wrap(pgUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrap(pgForeignKeyViolation)))

	assert.True(t, isForeignKeyConstraintViolation(wrap(pgForeignKeyViolation)))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isNotNullConstraintViolation(wrap(pgNotNullViolation)))
	assert.False(t, isNotNullConstraintViolation(fmt.Errorf("required field")))

	assert.True(t, isCheckConstraintViolation(wrap(pgCheckViolation)))
	assert.False(t, isCheckConstraintViolation(gorm.ErrRecordNotFound))
}
