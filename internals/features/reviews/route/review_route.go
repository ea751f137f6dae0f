package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewCtl "layananku_backend/internals/features/reviews/controller"
)

func ReviewRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reviewCtl.NewReviewController(db)

	reviews := r.Group("/reviews")

	reviews.Post("/", ctl.Create)      // POST   /reviews
	reviews.Get("/", ctl.List)         // GET    /reviews?provider_id=&customer_id=
	reviews.Get("/:id", ctl.GetByID)   // GET    /reviews/:id
	reviews.Delete("/:id", ctl.Delete) // DELETE /reviews/:id
}
