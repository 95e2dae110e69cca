package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	financeController "rhythmflow_backend/internals/features/finance/controller"
)

func FinanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := financeController.NewFinanceController(db)

	finance := api.Group("/finance")
	finance.Get("/summary", ctrl.Summary)
	finance.Get("/monthly", ctrl.Monthly)
	finance.Post("/expense", ctrl.AddExpense)
	finance.Delete("/expense/:id", ctrl.DeleteExpense)
}
