package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchController "rhythmflow_backend/internals/features/batches/controller"
)

func BatchRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := batchController.NewBatchController(db)

	batches := api.Group("/batches")
	batches.Post("/", ctrl.CreateBatch)
	batches.Get("/", ctrl.GetBatches)
	batches.Put("/:id", ctrl.UpdateBatch)
	batches.Delete("/:id", ctrl.DeleteBatch)
}
