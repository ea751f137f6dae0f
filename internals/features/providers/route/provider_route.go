package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	providerCtl "layananku_backend/internals/features/providers/controller"
	reviewCtl "layananku_backend/internals/features/reviews/controller"
)

func ProviderRoutes(r fiber.Router, db *gorm.DB) {
	ctl := providerCtl.NewServiceProviderController(db)
	reviews := reviewCtl.NewReviewController(db)

	providers := r.Group("/providers")

	providers.Post("/", ctl.Create)                       // POST   /providers
	providers.Get("/", ctl.List)                          // GET    /providers?area_id=&category_id=
	providers.Get("/:id", ctl.GetByID)                    // GET    /providers/:id
	providers.Get("/:id/reviews", reviews.ListByProvider) // GET   /providers/:id/reviews
	providers.Delete("/:id", ctl.Delete)                  // DELETE /providers/:id
}
