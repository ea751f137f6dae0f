package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "layananku_backend/internals/helpers"
)

var requestCols = []string{
	"request_id", "request_customer_id", "request_provider_id",
	"request_category_id", "request_area_id", "request_address",
	"request_status", "request_cost", "request_cancelled_at",
}

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

func newCrudApp(gdb *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	ctl := NewServiceRequestController(gdb)
	app.Post("/service-requests", ctl.Create)
	app.Get("/service-requests", ctl.List)
	app.Get("/service-requests/:id", ctl.GetByID)
	app.Patch("/service-requests/:id/status", ctl.UpdateStatus)
	app.Delete("/service-requests/:id", ctl.Delete)
	return app
}

func patchStatus(t *testing.T, app *fiber.App, id string, status string) (int, []byte) {
	t.Helper()
	body, err := json.Marshal(fiber.Map{"request_status": status})
	require.NoError(t, err)
	req := httptest.NewRequest("PATCH", "/service-requests/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

// PATCH status bebas pindah ke enum manapun, tanpa graf transisi.
func TestUpdateRequestStatus_BebasPindah(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newCrudApp(gdb)

	mock.ExpectExec(`UPDATE "service_requests" SET "request_status"=\$1 WHERE request_id = \$2`).
		WithArgs("completed", 12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(sqlmock.NewRows(requestCols).
			AddRow(12, 1, 2, 3, 4, "Hamra Main Street", "completed", 150.0, nil))

	status, raw := patchStatus(t, app, "12", "completed")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), `"request_status":"completed"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Status 'cancelled' ikut mencatat timestamp pembatalan.
func TestUpdateRequestStatus_CancelledMencatatTimestamp(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newCrudApp(gdb)

	cancelledAt := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "service_requests" SET "request_cancelled_at"=\$1,"request_status"=\$2 WHERE request_id = \$3`).
		WithArgs(sqlmock.AnyArg(), "cancelled", 12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(sqlmock.NewRows(requestCols).
			AddRow(12, 1, 2, 3, 4, "Hamra Main Street", "cancelled", nil, cancelledAt))

	status, raw := patchStatus(t, app, "12", "cancelled")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), "request_cancelled_at")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRequestStatus_EnumTidakValid(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newCrudApp(gdb)

	status, _ := patchStatus(t, app, "12", "selesai")

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRequestStatus_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newCrudApp(gdb)

	mock.ExpectExec(`UPDATE "service_requests" SET "request_status"=\$1 WHERE request_id = \$2`).
		WithArgs("pending", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	status, _ := patchStatus(t, app, "99", "pending")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Filter list per customer diteruskan ke WHERE.
func TestListRequests_FilterCustomer(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newCrudApp(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "service_requests" WHERE request_customer_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_customer_id = \$1`).
		WithArgs(1, 20).
		WillReturnRows(sqlmock.NewRows(requestCols))

	resp, err := app.Test(httptest.NewRequest("GET", "/service-requests?customer_id=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
