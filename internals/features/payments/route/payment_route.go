package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "layananku_backend/internals/features/payments/controller"
)

func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	payments := r.Group("/payments")

	payments.Post("/", ctl.Create)                            // POST /payments (upsert per request)
	payments.Get("/", ctl.List)                               // GET  /payments?request_id=
	payments.Get("/:id", ctl.GetByID)                         // GET  /payments/:id
	payments.Put("/request/:request_id", ctl.UpdateByRequest) // PUT  /payments/request/:request_id
}
