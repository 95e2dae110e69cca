package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studioController "rhythmflow_backend/internals/features/studios/controller"
	middlewares "rhythmflow_backend/internals/middlewares"
	"rhythmflow_backend/internals/notifier"
)

// AuthRoutes is the only unauthenticated surface, so each flow carries
// its own rate limiter.
func AuthRoutes(app *fiber.App, db *gorm.DB, mailer *notifier.Service) {
	ctrl := studioController.NewAuthController(db, mailer)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/verify-email", middlewares.OtpRateLimiter(), ctrl.VerifyEmail)
	auth.Post("/forgot-password", middlewares.OtpRateLimiter(), ctrl.ForgotPassword)
	auth.Post("/reset-password-otp", middlewares.OtpRateLimiter(), ctrl.ResetPassword)
}
