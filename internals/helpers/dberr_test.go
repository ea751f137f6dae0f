package helper

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateDBError_RecordNotFound(t *testing.T) {
	fe := TranslateDBError(gorm.ErrRecordNotFound, "")
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestTranslateDBError_DuplicateKey(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "uk_area_location" (SQLSTATE 23505)`)

	fe := TranslateDBError(err, "Area layanan sudah ada")
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "Area layanan sudah ada", fe.Message)
}

func TestTranslateDBError_DuplicateKeyDefaultMessage(t *testing.T) {
	err := errors.New("UNIQUE constraint failed")

	fe := TranslateDBError(err, "")
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.NotEmpty(t, fe.Message)
}

func TestTranslateDBError_ForeignKey(t *testing.T) {
	err := errors.New(`ERROR: insert or update on table "service_requests" violates foreign key constraint (SQLSTATE 23503)`)

	fe := TranslateDBError(err, "")
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestTranslateDBError_CheckConstraint(t *testing.T) {
	err := errors.New(`ERROR: new row for relation "reviews" violates check constraint "chk_reviews_review_rating" (SQLSTATE 23514)`)

	fe := TranslateDBError(err, "")
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestTranslateDBError_Unknown(t *testing.T) {
	fe := TranslateDBError(errors.New("connection reset by peer"), "")
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
}
