package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"layananku_backend/internals/configs"
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
	ctl := NewAuthController(gdb)
	app.Post("/auth/login", ctl.Login)
	app.Post("/auth/logout", ctl.Logout)
	return app
}

func login(t *testing.T, app *fiber.App, payload fiber.Map) (int, []byte) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000) // bcrypt agak lambat
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func TestLoginCustomer_Sukses(t *testing.T) {
	configs.JWTSecret = "test-secret"
	gdb, mock := newMockDB(t)
	app := newTestApp(gdb)

	hash, err := helper.HashPassword("customer123")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_email = \$1`).
		WithArgs("ali@customer.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "customer_email", "customer_password_hash"}).
			AddRow(1, "ali@customer.com", hash))

	status, raw := login(t, app, fiber.Map{
		"email":    "ali@customer.com",
		"password": "customer123",
		"role":     "customer",
	})

	assert.Equal(t, fiber.StatusOK, status)

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			Role        string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Data.AccessToken)
	assert.Equal(t, "Bearer", out.Data.TokenType)
	assert.Equal(t, "customer", out.Data.Role)

	claims, err := helper.ParseAccessToken(out.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, float64(1), claims["sub"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_PasswordSalah(t *testing.T) {
	configs.JWTSecret = "test-secret"
	gdb, mock := newMockDB(t)
	app := newTestApp(gdb)

	hash, err := helper.HashPassword("customer123")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_email = \$1`).
		WithArgs("ali@customer.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "customer_email", "customer_password_hash"}).
			AddRow(1, "ali@customer.com", hash))

	status, raw := login(t, app, fiber.Map{
		"email":    "ali@customer.com",
		"password": "password-salah",
		"role":     "customer",
	})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, string(raw), "Email atau password salah")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Email tidak terdaftar harus dibalas pesan yang sama dengan password salah.
func TestLogin_EmailTidakTerdaftar(t *testing.T) {
	configs.JWTSecret = "test-secret"
	gdb, mock := newMockDB(t)
	app := newTestApp(gdb)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customer_email = \$1`).
		WithArgs("ghost@customer.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))

	status, raw := login(t, app, fiber.Map{
		"email":    "ghost@customer.com",
		"password": "customer123",
		"role":     "customer",
	})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, string(raw), "Email atau password salah")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginProvider_Sukses(t *testing.T) {
	configs.JWTSecret = "test-secret"
	gdb, mock := newMockDB(t)
	app := newTestApp(gdb)

	hash, err := helper.HashPassword("provider123")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "service_providers" WHERE provider_email = \$1`).
		WithArgs("hassan@provider.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"provider_id", "provider_email", "provider_password_hash"}).
			AddRow(2, "hassan@provider.com", hash))

	status, raw := login(t, app, fiber.Map{
		"email":    "hassan@provider.com",
		"password": "provider123",
		"role":     "provider",
	})

	assert.Equal(t, fiber.StatusOK, status)

	var out struct {
		Data struct {
			Role string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "provider", out.Data.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_RoleTidakDikenal(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(gdb)

	status, _ := login(t, app, fiber.Map{
		"email":    "x@y.com",
		"password": "apapunlah1",
		"role":     "admin",
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
