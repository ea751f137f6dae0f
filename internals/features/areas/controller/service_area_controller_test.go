package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "layananku_backend/internals/helpers"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func newTestApp(gdb *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	ctl := NewServiceAreaController(gdb)
	app.Post("/areas", ctl.Create)
	app.Get("/areas", ctl.List)
	app.Get("/areas/:id", ctl.GetByID)
	app.Delete("/areas/:id", ctl.Delete)
	return app
}

func TestCreateArea_Sukses(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(gdb)

	mock.ExpectQuery(`INSERT INTO "service_areas"`).
		WithArgs("Beirut", "Hamra", "1103").
		WillReturnRows(sqlmock.NewRows([]string{"area_id"}).AddRow(1))

	body, _ := json.Marshal(fiber.Map{
		"area_city":        "Beirut",
		"area_district":    "Hamra",
		"area_postal_code": "1103",
	})
	req := httptest.NewRequest("POST", "/areas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"area_id":1`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Kombinasi (kota, kecamatan, kode pos) yang sama → 409.
func TestCreateArea_KombinasiDuplikat(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(gdb)

	mock.ExpectQuery(`INSERT INTO "service_areas"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "uk_area_location" (SQLSTATE 23505)`))

	body, _ := json.Marshal(fiber.Map{
		"area_city":        "Beirut",
		"area_district":    "Hamra",
		"area_postal_code": "1103",
	})
	req := httptest.NewRequest("POST", "/areas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArea_FieldWajibKosong(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(gdb)

	body, _ := json.Marshal(fiber.Map{"area_city": "Beirut"})
	req := httptest.NewRequest("POST", "/areas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAreas(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "service_areas"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(`SELECT \* FROM "service_areas" ORDER BY`).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"area_id", "area_city", "area_district", "area_postal_code"}).
			AddRow(1, "Beirut", "Achrafieh", "1100").
			AddRow(2, "Beirut", "Hamra", "1103"))

	resp, err := app.Test(httptest.NewRequest("GET", "/areas", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out struct {
		Data       []any `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
			Count int   `json:"count"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out.Data, 2)
	assert.Equal(t, int64(2), out.Pagination.Total)
	assert.Equal(t, 2, out.Pagination.Count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
