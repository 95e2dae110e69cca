package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studioController "rhythmflow_backend/internals/features/studios/controller"
	"rhythmflow_backend/internals/notifier"
)

func StudioRoutes(api fiber.Router, db *gorm.DB, mailer *notifier.Service) {
	ctrl := studioController.NewProfileController(db, mailer)

	studio := api.Group("/studio")
	studio.Get("/me", ctrl.Me)
	studio.Put("/me", ctrl.UpdateProfile)
	studio.Post("/verify-profile-otp", ctrl.VerifyProfileOtp)
	studio.Post("/change-password", ctrl.ChangePassword)
}
