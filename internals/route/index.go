package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "rhythmflow_backend/internals/middlewares/auth"
	"rhythmflow_backend/internals/notifier"
	routeDetails "rhythmflow_backend/internals/route/details"
)

// SetupRoutes mounts the public auth surface and the bearer-protected
// tenant groups.
func SetupRoutes(app *fiber.App, db *gorm.DB, mailer *notifier.Service) {
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, mailer)

	protected := app.Group("/api", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Setting up StudioRoutes...")
	routeDetails.StudioRoutes(protected, db, mailer)

	log.Println("[INFO] Setting up StudentRoutes...")
	routeDetails.StudentRoutes(protected, db)

	log.Println("[INFO] Setting up BatchRoutes...")
	routeDetails.BatchRoutes(protected, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	routeDetails.AttendanceRoutes(protected, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	routeDetails.PaymentRoutes(protected, db)

	log.Println("[INFO] Setting up FinanceRoutes...")
	routeDetails.FinanceRoutes(protected, db)

	log.Println("[INFO] Setting up SettingsRoutes...")
	routeDetails.SettingsRoutes(protected, db)
}
