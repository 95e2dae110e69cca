package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rhythmflow_backend/internals/features/batches/dto"
	"rhythmflow_backend/internals/features/batches/model"
	helper "rhythmflow_backend/internals/helpers"
	authMiddleware "rhythmflow_backend/internals/middlewares/auth"
)

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db}
}

// POST /api/batches
func (ctrl *BatchController) CreateBatch(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateBatchRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Batch name is required")
	}
	if err := dto.ValidateDays(body.Days); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	normalized := dto.NormalizeName(body.Name)
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.BatchModel{}).
		Where("batch_studio_id = ? AND batch_normalized_name = ?", studioID, normalized).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Batch name already exists for this studio")
	}

	batch := model.BatchModel{
		BatchStudioID:       studioID,
		BatchName:           body.Name,
		BatchNormalizedName: normalized,
		BatchTiming:         strings.TrimSpace(body.Timing),
		BatchDays:           body.Days,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&batch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Batch name already exists for this studio")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create batch")
	}

	return helper.JsonCreated(c, "Batch created", dto.ToBatchResponse(&batch))
}

// GET /api/batches
func (ctrl *BatchController) GetBatches(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var batches []model.BatchModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("batch_studio_id = ?", studioID).
		Order("batch_created_at DESC").
		Find(&batches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch batches")
	}

	return helper.JsonOK(c, "ok", dto.ToBatchResponseList(batches))
}

// PUT /api/batches/:id
func (ctrl *BatchController) UpdateBatch(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var batch model.BatchModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("batch_id = ? AND batch_studio_id = ?", c.Params("id"), studioID).
		First(&batch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}

	var body dto.UpdateBatchRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Batch name is required")
		}
		normalized := dto.NormalizeName(name)

		// duplicate check, ignoring this batch itself
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&model.BatchModel{}).
			Where("batch_studio_id = ? AND batch_normalized_name = ? AND batch_id <> ?", studioID, normalized, batch.BatchID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Another batch already has this name")
		}
		batch.BatchName = name
		batch.BatchNormalizedName = normalized
	}
	if body.Timing != nil {
		batch.BatchTiming = strings.TrimSpace(*body.Timing)
	}
	if body.Days != nil {
		if err := dto.ValidateDays(*body.Days); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		batch.BatchDays = *body.Days
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&batch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Another batch already has this name")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update batch")
	}

	return helper.JsonUpdated(c, "Batch updated", dto.ToBatchResponse(&batch))
}

// DELETE /api/batches/:id
// No cascade: students assigned to the batch keep their stale reference.
func (ctrl *BatchController) DeleteBatch(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("batch_id = ? AND batch_studio_id = ?", c.Params("id"), studioID).
		Delete(&model.BatchModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete batch")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}

	return helper.JsonDeleted(c, "Batch deleted", fiber.Map{"batch_id": c.Params("id")})
}
