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
	"gorm.io/gorm"

	"layananku_backend/internals/configs"
	helper "layananku_backend/internals/helpers"
	authMw "layananku_backend/internals/middlewares/auth"
)

func newLifecycleApp(gdb *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	life := NewLifecycleController(gdb)

	guarded := app.Group("/service-requests", authMw.AuthMiddleware())

	asProvider := guarded.Group("/", authMw.RequireRole(helper.RoleProvider))
	asProvider.Post("/:id/accept", life.Accept)
	asProvider.Post("/:id/complete", life.Complete)
	asProvider.Post("/:id/cancel", life.Cancel)

	asCustomer := guarded.Group("/", authMw.RequireRole(helper.RoleCustomer))
	asCustomer.Post("/:id/pay", life.Pay)
	asCustomer.Post("/:id/review", life.Review)
	return app
}

func bearerToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	configs.JWTSecret = "test-secret"
	token, err := helper.CreateAccessToken(userID, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doLifecycle(t *testing.T, app *fiber.App, path, auth string, payload any) (int, []byte) {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func requestRow(id, customerID uint, providerID interface{}, status string, cost interface{}) *sqlmock.Rows {
	return sqlmock.NewRows(requestCols).
		AddRow(id, customerID, providerID, 3, 4, "Hamra Main Street", status, cost, nil)
}

func TestAcceptRequest_TanpaToken(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	status, _ := doLifecycle(t, app, "/service-requests/12/accept", "", nil)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRequest_PendingKeInProgress(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "pending", nil))

	mock.ExpectExec(`UPDATE "service_requests" SET "request_status"=\$1 WHERE request_id = \$2`).
		WithArgs("in_progress", 12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, raw := doLifecycle(t, app, "/service-requests/12/accept",
		bearerToken(t, 2, helper.RoleProvider), nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), `"request_status":"in_progress"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRequest_BukanProviderYangDitunjuk(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "pending", nil))

	status, _ := doLifecycle(t, app, "/service-requests/12/accept",
		bearerToken(t, 8, helper.RoleProvider), nil)

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Role salah ditolak middleware sebelum menyentuh database.
func TestAcceptRequest_RoleCustomerDitolak(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	status, raw := doLifecycle(t, app, "/service-requests/12/accept",
		bearerToken(t, 1, helper.RoleCustomer), nil)

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, string(raw), "Akses ditolak untuk role ini")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayRequest_RoleProviderDitolak(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	status, raw := doLifecycle(t, app, "/service-requests/12/pay",
		bearerToken(t, 2, helper.RoleProvider),
		fiber.Map{"payment_method": "cash"})

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, string(raw), "Akses ditolak untuk role ini")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRequest_StatusBukanPending(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "completed", nil))

	status, _ := doLifecycle(t, app, "/service-requests/12/accept",
		bearerToken(t, 2, helper.RoleProvider), nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRequest_InProgressKeCompleted(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "in_progress", nil))

	mock.ExpectExec(`UPDATE "service_requests" SET "request_status"=\$1 WHERE request_id = \$2`).
		WithArgs("completed", 12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, _ := doLifecycle(t, app, "/service-requests/12/complete",
		bearerToken(t, 2, helper.RoleProvider), nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRequest_MencatatTimestamp(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "pending", nil))

	mock.ExpectExec(`UPDATE "service_requests" SET "request_cancelled_at"=\$1,"request_status"=\$2 WHERE request_id = \$3`).
		WithArgs(sqlmock.AnyArg(), "cancelled", 12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, raw := doLifecycle(t, app, "/service-requests/12/cancel",
		bearerToken(t, 2, helper.RoleProvider), nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), "request_cancelled_at")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Bayar hanya boleh oleh pemilik request dan nominal harus sama dengan biaya.
func TestPayRequest_NominalTidakCocok(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "completed", 100.0))

	amount := 50.0
	status, _ := doLifecycle(t, app, "/service-requests/12/pay",
		bearerToken(t, 1, helper.RoleCustomer),
		fiber.Map{"payment_method": "cash", "payment_amount": amount})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayRequest_BelumAdaBiaya(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "completed", nil))

	status, _ := doLifecycle(t, app, "/service-requests/12/pay",
		bearerToken(t, 1, helper.RoleCustomer),
		fiber.Map{"payment_method": "cash"})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayRequest_SuksesInsertBaru(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "completed", 100.0))

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))

	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "payment_request_id", "payment_amount", "payment_method", "payment_status"}).
			AddRow(1, 12, 100.0, "cash", "completed"))

	status, raw := doLifecycle(t, app, "/service-requests/12/pay",
		bearerToken(t, 1, helper.RoleCustomer),
		fiber.Map{"payment_method": "cash"})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), `"payment_status":"completed"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Review lewat lifecycle: ditolak kalau pembayaran belum lunas.
func TestReviewRequest_BelumDibayar(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "completed", 100.0))

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))

	status, _ := doLifecycle(t, app, "/service-requests/12/review",
		bearerToken(t, 1, helper.RoleCustomer),
		fiber.Map{"review_rating": 5})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRequest_Sukses(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newLifecycleApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "service_requests" WHERE request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(requestRow(12, 1, 2, "completed", 100.0))

	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE payment_request_id = \$1`).
		WithArgs(12, 1).
		WillReturnRows(sqlmock.NewRows([]string{"payment_id", "payment_request_id", "payment_status"}).
			AddRow(1, 12, "completed"))

	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"review_id"}).AddRow(7))

	status, raw := doLifecycle(t, app, "/service-requests/12/review",
		bearerToken(t, 1, helper.RoleCustomer),
		fiber.Map{"review_rating": 5, "review_comment": "Mantap"})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, string(raw), `"review_rating":5`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
