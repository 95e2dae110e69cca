package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rhythmflow_backend/internals/features/studios/dto"
	"rhythmflow_backend/internals/features/studios/model"
	"rhythmflow_backend/internals/features/studios/service"
	helper "rhythmflow_backend/internals/helpers"
	authMiddleware "rhythmflow_backend/internals/middlewares/auth"
	"rhythmflow_backend/internals/notifier"
)

type ProfileController struct {
	DB       *gorm.DB
	Notifier *notifier.Service
}

func NewProfileController(db *gorm.DB, n *notifier.Service) *ProfileController {
	return &ProfileController{DB: db, Notifier: n}
}

func (ctrl *ProfileController) currentStudio(c *fiber.Ctx) (*model.StudioModel, error) {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var studio model.StudioModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("studio_id = ?", studioID).
		First(&studio).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Studio not found")
	}
	return &studio, nil
}

// GET /api/studio/me
func (ctrl *ProfileController) Me(c *fiber.Ctx) error {
	studio, err := ctrl.currentStudio(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "ok", dto.ToStudioResponse(studio))
}

// PUT /api/studio/me
// Class name changes apply immediately (after a uniqueness check). Email and
// phone changes are staged into pending fields and must be confirmed through
// VerifyProfileOtp; the code is dispatched to the NEW contact address(es).
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studio, err := ctrl.currentStudio(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	// Immediate rename, guarded by a uniqueness check against other studios.
	if body.ClassName != nil {
		name := strings.TrimSpace(*body.ClassName)
		if name != "" && name != studio.StudioClassName {
			var count int64
			if err := ctrl.DB.WithContext(c.Context()).
				Model(&model.StudioModel{}).
				Where("studio_class_name = ? AND studio_id <> ?", name, studio.StudioID).
				Count(&count).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
			}
			if count > 0 {
				return helper.JsonError(c, fiber.StatusConflict, "A studio with this name already exists")
			}
			studio.StudioClassName = name
		}
	}

	var pendingEmail, pendingPhone *string
	if body.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*body.Email))
		if email != "" && email != studio.StudioEmail {
			pendingEmail = &email
		}
	}
	if body.Phone != nil {
		phone := strings.TrimSpace(*body.Phone)
		if phone != "" && phone != studio.StudioPhone {
			pendingPhone = &phone
		}
	}

	// Nothing staged: apply synchronously and return.
	if pendingEmail == nil && pendingPhone == nil {
		if err := ctrl.DB.WithContext(c.Context()).Save(studio).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "A studio with this name already exists")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		return helper.JsonUpdated(c, "Profile updated", dto.ToStudioResponse(studio))
	}

	code, err := helper.GenerateOTP()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate OTP")
	}
	expires := helper.OTPExpiry()
	studio.StudioPendingEmail = pendingEmail
	studio.StudioPendingPhone = pendingPhone
	studio.StudioProfileOtp = &code
	studio.StudioProfileOtpExpires = &expires

	if err := ctrl.DB.WithContext(c.Context()).Save(studio).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A studio with this name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	if pendingEmail != nil {
		ctrl.Notifier.SendEmailAsync(*pendingEmail, "Confirm your new RhythmFlow contact", otpEmailBody(code))
	}
	if pendingPhone != nil {
		ctrl.Notifier.SendSMSAsync(*pendingPhone, otpEmailBody(code))
	}

	return helper.JsonOK(c, "OTP sent to the new contact address. Verify to apply the change.", fiber.Map{
		"requires_verification": true,
		"studio":                dto.ToStudioResponse(studio),
	})
}

// POST /api/studio/verify-profile-otp
func (ctrl *ProfileController) VerifyProfileOtp(c *fiber.Ctx) error {
	var body dto.VerifyProfileOtpRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studio, err := ctrl.currentStudio(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if helper.OTPExpired(studio.StudioProfileOtpExpires, time.Now().UTC()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "OTP expired. Please request the change again.")
	}
	if !helper.OTPMatches(studio.StudioProfileOtp, body.Otp) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid OTP")
	}

	if studio.StudioPendingEmail != nil {
		studio.StudioEmail = *studio.StudioPendingEmail
	}
	if studio.StudioPendingPhone != nil {
		studio.StudioPhone = *studio.StudioPendingPhone
	}
	studio.StudioPendingEmail = nil
	studio.StudioPendingPhone = nil
	studio.StudioProfileOtp = nil
	studio.StudioProfileOtpExpires = nil

	if err := ctrl.DB.WithContext(c.Context()).Save(studio).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email or phone already in use by another studio")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonUpdated(c, "Contact details updated", dto.ToStudioResponse(studio))
}

// POST /api/studio/change-password
// No OTP here: the caller already holds a valid session.
func (ctrl *ProfileController) ChangePassword(c *fiber.Ctx) error {
	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studio, err := ctrl.currentStudio(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := service.CheckPasswordHash(studio.StudioPassword, body.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Current password is incorrect")
	}

	hashed, err := service.HashPassword(body.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	studio.StudioPassword = hashed
	if err := ctrl.DB.WithContext(c.Context()).Save(studio).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonUpdated(c, "Password updated successfully", nil)
}
