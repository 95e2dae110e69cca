package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "rhythmflow_backend/internals/features/payments/controller"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Get("/", ctrl.GetStatus)
	payments.Put("/reset", ctrl.ResetAll)
	payments.Put("/pay/:id", ctrl.MarkPaid)
	payments.Put("/unpay/:id", ctrl.MarkUnpaid)
}
