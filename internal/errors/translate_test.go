package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func pgError(code string) error {
	return fmt.Errorf("query failed: %w", &pgconn.PgError{Code: code, Message: "db says no"})
}

func TestTranslate_Nil(t *testing.T) {
	assert.NoError(t, Translate("item", nil))
}

func TestTranslate_RecordNotFound(t *testing.T) {
	err := Translate("item", gorm.ErrRecordNotFound)

	assert.True(t, IsNotFound(err))
	assert.Equal(t, "item does not exist", err.Error())
}

func TestTranslate_UniqueViolation(t *testing.T) {
	err := Translate("brand", pgError("23505"))

	assert.True(t, IsConflict(err))
	assert.Equal(t, "brand already exists", err.Error())
}

func TestTranslate_ForeignKeyViolation(t *testing.T) {
	err := Translate("item", pgError("23503"))

	assert.True(t, IsBadRequest(err))
	assert.Equal(t, "wrong fields in request body", err.Error())
}

func TestTranslate_NotNullViolation(t *testing.T) {
	err := Translate("item", pgError("23502"))

	assert.True(t, IsBadRequest(err))
}

func TestTranslate_UndefinedColumn(t *testing.T) {
	err := Translate("item", pgError("42703"))

	assert.True(t, IsUnprocessable(err))
}

func TestTranslate_TriggerException(t *testing.T) {
	err := Translate("rental", pgError("P0001"))

	assert.True(t, IsConflict(err))
}

func TestTranslate_UnknownError(t *testing.T) {
	boom := errors.New("connection reset")

	assert.Equal(t, boom, Translate("item", boom))
}

func TestTranslate_UnknownPgCode(t *testing.T) {
	err := pgError("57014")

	assert.Equal(t, err, Translate("item", err))
}
