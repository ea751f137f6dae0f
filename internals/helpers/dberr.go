package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TranslateDBError menerjemahkan error dari storage (GORM/driver) menjadi
// *fiber.Error dengan status yang benar, supaya controller tidak membocorkan
// error mentah ke client.
//
// - record not found      → 404
// - duplicate/unique      → 409 (pakai conflictMsg)
// - foreign key violation → 400 (referensi tidak valid)
// - check constraint      → 400 (nilai di luar batas)
// - selain itu            → 500
func TranslateDBError(err error, conflictMsg string) *fiber.Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique"):
		if conflictMsg == "" {
			conflictMsg = "Data sudah ada"
		}
		return fiber.NewError(fiber.StatusConflict, conflictMsg)
	case strings.Contains(msg, "foreign key"):
		return fiber.NewError(fiber.StatusBadRequest, "Referensi tidak valid")
	case strings.Contains(msg, "check constraint") || strings.Contains(msg, "violates check"):
		return fiber.NewError(fiber.StatusBadRequest, "Nilai di luar batas yang diizinkan")
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
