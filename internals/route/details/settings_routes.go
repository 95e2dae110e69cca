package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "rhythmflow_backend/internals/features/settings/controller"
)

func SettingsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := settingsController.NewSettingsController(db)

	settings := api.Group("/settings")
	settings.Get("/", ctrl.GetSettings)
	settings.Put("/", ctrl.UpdateSettings)
}
