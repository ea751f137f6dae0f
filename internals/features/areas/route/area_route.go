package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	areaCtl "layananku_backend/internals/features/areas/controller"
)

func AreaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := areaCtl.NewServiceAreaController(db)

	areas := r.Group("/areas")

	areas.Post("/", ctl.Create)      // POST   /areas
	areas.Get("/", ctl.List)         // GET    /areas
	areas.Get("/:id", ctl.GetByID)   // GET    /areas/:id
	areas.Delete("/:id", ctl.Delete) // DELETE /areas/:id
}
