package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "layananku_backend/internals/features/auth/controller"
	customerCtl "layananku_backend/internals/features/customers/controller"
	providerCtl "layananku_backend/internals/features/providers/controller"
	"layananku_backend/internals/middlewares"
	authMw "layananku_backend/internals/middlewares/auth"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)
	customers := customerCtl.NewCustomerController(db)
	providers := providerCtl.NewServiceProviderController(db)

	auth := r.Group("/auth")

	// register = create biasa, hanya lewat limiter yang lebih ketat
	auth.Post("/register/customer", middlewares.RegisterRateLimiter(), customers.Create)
	auth.Post("/register/provider", middlewares.RegisterRateLimiter(), providers.Create)

	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/logout", ctl.Logout)
	auth.Get("/me", authMw.AuthMiddleware(), ctl.Me)
}
