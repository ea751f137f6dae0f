package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryCtl "layananku_backend/internals/features/categories/controller"
)

func CategoryRoutes(r fiber.Router, db *gorm.DB) {
	ctl := categoryCtl.NewServiceCategoryController(db)

	categories := r.Group("/categories")

	categories.Post("/", ctl.Create)      // POST   /categories
	categories.Get("/", ctl.List)         // GET    /categories
	categories.Get("/:id", ctl.GetByID)   // GET    /categories/:id
	categories.Delete("/:id", ctl.Delete) // DELETE /categories/:id
}
