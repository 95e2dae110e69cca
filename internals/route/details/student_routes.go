package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "rhythmflow_backend/internals/features/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := api.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Get("/", ctrl.GetStudents)
	students.Get("/:id", ctrl.GetStudent)
	students.Put("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}
