package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rhythmflow_backend/internals/features/settings/dto"
	"rhythmflow_backend/internals/features/settings/model"
	helper "rhythmflow_backend/internals/helpers"
	authMiddleware "rhythmflow_backend/internals/middlewares/auth"
)

var validate = validator.New()

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// getOrCreate returns the studio's settings row, creating one with the
// defaults on first access so GET never 404s.
func (ctrl *SettingsController) getOrCreate(c *fiber.Ctx, studioID uuid.UUID) (*model.StudioSettingsModel, error) {
	var settings model.StudioSettingsModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("settings_studio_id = ?", studioID).
		First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = model.StudioSettingsModel{
		SettingsStudioID:            studioID,
		SettingsMonthStartDay:       1,
		SettingsHideInactive:        true,
		SettingsFeeReminderTemplate: model.DefaultFeeReminderTemplate,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&settings).Error; err != nil {
		// Lost a create race to a concurrent first read; the row exists now.
		if helper.IsUniqueViolation(err) {
			ferr := ctrl.DB.WithContext(c.Context()).
				Where("settings_studio_id = ?", studioID).
				First(&settings).Error
			return &settings, ferr
		}
		return nil, err
	}
	return &settings, nil
}

// GET /api/settings
func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	settings, err := ctrl.getOrCreate(c, studioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load settings")
	}

	return helper.JsonOK(c, "ok", settings)
}

// PUT /api/settings
func (ctrl *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.UpdateSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	settings, err := ctrl.getOrCreate(c, studioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load settings")
	}

	if body.OwnerName != nil {
		settings.SettingsOwnerName = *body.OwnerName
	}
	if body.ContactEmail != nil {
		settings.SettingsContactEmail = *body.ContactEmail
	}
	if body.ContactPhone != nil {
		settings.SettingsContactPhone = *body.ContactPhone
	}
	if body.DefaultMonthlyFee != nil {
		settings.SettingsDefaultMonthlyFee = *body.DefaultMonthlyFee
	}
	if body.MonthStartDay != nil {
		settings.SettingsMonthStartDay = *body.MonthStartDay
	}
	if body.HideInactive != nil {
		settings.SettingsHideInactive = *body.HideInactive
	}
	if body.FeeReminderTemplate != nil {
		settings.SettingsFeeReminderTemplate = *body.FeeReminderTemplate
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update settings")
	}

	return helper.JsonUpdated(c, "Settings updated", settings)
}
