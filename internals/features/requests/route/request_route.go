package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requestCtl "layananku_backend/internals/features/requests/controller"
	helper "layananku_backend/internals/helpers"
	authMw "layananku_backend/internals/middlewares/auth"
)

func RequestRoutes(r fiber.Router, db *gorm.DB) {
	ctl := requestCtl.NewServiceRequestController(db)
	life := requestCtl.NewLifecycleController(db)

	requests := r.Group("/service-requests")

	requests.Post("/", ctl.Create)                  // POST   /service-requests
	requests.Get("/", ctl.List)                     // GET    /service-requests?customer_id=&provider_id=
	requests.Get("/:id", ctl.GetByID)               // GET    /service-requests/:id
	requests.Patch("/:id/status", ctl.UpdateStatus) // PATCH  /service-requests/:id/status
	requests.Delete("/:id", ctl.Delete)             // DELETE /service-requests/:id

	// aksi lifecycle butuh token; role dicek di middleware, kepemilikan di controller
	guarded := requests.Group("/", authMw.AuthMiddleware())

	asProvider := guarded.Group("/", authMw.RequireRole(helper.RoleProvider))
	asProvider.Post("/:id/accept", life.Accept)     // POST /service-requests/:id/accept
	asProvider.Post("/:id/complete", life.Complete) // POST /service-requests/:id/complete
	asProvider.Post("/:id/cancel", life.Cancel)     // POST /service-requests/:id/cancel

	asCustomer := guarded.Group("/", authMw.RequireRole(helper.RoleCustomer))
	asCustomer.Post("/:id/pay", life.Pay)       // POST /service-requests/:id/pay
	asCustomer.Post("/:id/review", life.Review) // POST /service-requests/:id/review
}
