package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerCtl "layananku_backend/internals/features/customers/controller"
)

func CustomerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := customerCtl.NewCustomerController(db)

	customers := r.Group("/customers")

	customers.Post("/", ctl.Create)      // POST   /customers
	customers.Get("/", ctl.List)         // GET    /customers
	customers.Get("/:id", ctl.GetByID)   // GET    /customers/:id
	customers.Delete("/:id", ctl.Delete) // DELETE /customers/:id
}
