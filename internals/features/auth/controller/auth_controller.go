package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "layananku_backend/internals/features/auth/dto"
	customerDto "layananku_backend/internals/features/customers/dto"
	customerModel "layananku_backend/internals/features/customers/model"
	providerDto "layananku_backend/internals/features/providers/dto"
	providerModel "layananku_backend/internals/features/providers/model"
	helper "layananku_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ======================= LOGIN ======================= */
// POST /auth/login
// Satu endpoint untuk dua role; tabelnya dipilih dari field "role".
// Email tidak ditemukan dan password salah sengaja dibalas pesan yang sama.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	const badCreds = "Email atau password salah"

	switch req.Role {
	case helper.RoleCustomer:
		var row customerModel.CustomerModel
		if err := h.DB.First(&row, "customer_email = ?", req.Email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, badCreds)
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !helper.VerifyPassword(row.CustomerPasswordHash, req.Password) {
			return fiber.NewError(fiber.StatusUnauthorized, badCreds)
		}
		token, err := helper.CreateAccessToken(row.CustomerID, helper.RoleCustomer, accessTokenTTL)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
		}
		h.setAccessCookie(c, token)
		return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			Role:        helper.RoleCustomer,
			User:        customerDto.FromModel(row),
		})

	case helper.RoleProvider:
		var row providerModel.ServiceProviderModel
		if err := h.DB.First(&row, "provider_email = ?", req.Email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, badCreds)
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !helper.VerifyPassword(row.ProviderPasswordHash, req.Password) {
			return fiber.NewError(fiber.StatusUnauthorized, badCreds)
		}
		token, err := helper.CreateAccessToken(row.ProviderID, helper.RoleProvider, accessTokenTTL)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
		}
		h.setAccessCookie(c, token)
		return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			Role:        helper.RoleProvider,
			User:        providerDto.FromModel(row),
		})
	}

	return fiber.NewError(fiber.StatusBadRequest, "Role tidak dikenal")
}

/* ======================= ME ======================= */
// GET /auth/me (guarded)
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	switch helper.GetRoleFromToken(c) {
	case helper.RoleCustomer:
		var row customerModel.CustomerModel
		if err := h.DB.Preload("Area").First(&row, "customer_id = ?", userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonOK(c, "OK", customerDto.FromModel(row))
	case helper.RoleProvider:
		var row providerModel.ServiceProviderModel
		if err := h.DB.Preload("Area").Preload("Categories").First(&row, "provider_id = ?", userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonOK(c, "OK", providerDto.FromModel(row))
	}

	return fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid")
}

/* ======================= LOGOUT ======================= */
// POST /auth/logout — hapus cookie, token Bearer tinggal dibuang di klien.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func (h *AuthController) setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
