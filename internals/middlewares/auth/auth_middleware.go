package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "layananku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi JWT (header Bearer / cookie) dan menyimpan
// user_id + user_role di Locals untuk dipakai controller.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login. Sertakan token akses.")
		}

		claims, err := helper.ParseAccessToken(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid atau kedaluwarsa")
		}

		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
		}
		role, _ := claims["role"].(string)

		c.Locals("user_id", uint(sub))
		c.Locals("user_role", role)
		return c.Next()
	}
}

// RequireRole menolak request bila role pada token tidak sesuai.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetRoleFromToken(c) != role {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak untuk role ini")
		}
		return c.Next()
	}
}
