package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "rhythmflow_backend/internals/features/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Post("/", ctrl.SaveDay)
	attendance.Get("/weekly", ctrl.Weekly)
	attendance.Get("/summary", ctrl.MonthlySummary)
	attendance.Get("/", ctrl.GetDay)
}
