// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	areaRoute "layananku_backend/internals/features/areas/route"
	authRoute "layananku_backend/internals/features/auth/route"
	categoryRoute "layananku_backend/internals/features/categories/route"
	customerRoute "layananku_backend/internals/features/customers/route"
	paymentRoute "layananku_backend/internals/features/payments/route"
	providerRoute "layananku_backend/internals/features/providers/route"
	requestRoute "layananku_backend/internals/features/requests/route"
	reviewRoute "layananku_backend/internals/features/reviews/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up AreaRoutes...")
	areaRoute.AreaRoutes(api, db)

	log.Println("[INFO] Setting up CategoryRoutes...")
	categoryRoute.CategoryRoutes(api, db)

	log.Println("[INFO] Setting up CustomerRoutes...")
	customerRoute.CustomerRoutes(api, db)

	log.Println("[INFO] Setting up ProviderRoutes...")
	providerRoute.ProviderRoutes(api, db)

	log.Println("[INFO] Setting up RequestRoutes...")
	requestRoute.RequestRoutes(api, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(api, db)

	log.Println("[INFO] Setting up ReviewRoutes...")
	reviewRoute.ReviewRoutes(api, db)
}
