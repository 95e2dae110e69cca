package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rhythmflow_backend/internals/features/studios/dto"
	"rhythmflow_backend/internals/features/studios/model"
	"rhythmflow_backend/internals/features/studios/service"
	helper "rhythmflow_backend/internals/helpers"
	"rhythmflow_backend/internals/notifier"
)

var validate = validator.New()

type AuthController struct {
	DB       *gorm.DB
	Notifier *notifier.Service
}

func NewAuthController(db *gorm.DB, n *notifier.Service) *AuthController {
	return &AuthController{DB: db, Notifier: n}
}

func otpEmailBody(code string) string {
	return fmt.Sprintf("Your RhythmFlow verification code is %s. It expires in 10 minutes.", code)
}

// issueEmailVerificationOtp stores a fresh code on the studio row. A
// re-request overwrites any unconsumed code (last write wins).
func issueEmailVerificationOtp(studio *model.StudioModel) (string, error) {
	code, err := helper.GenerateOTP()
	if err != nil {
		return "", err
	}
	expires := helper.OTPExpiry()
	studio.StudioEmailVerificationOtp = &code
	studio.StudioEmailVerificationOtpExpires = &expires
	return code, nil
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing model.StudioModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("studio_class_name = ?", body.ClassName).
		First(&existing).Error

	switch {
	case err == nil && existing.StudioEmailVerified:
		return helper.JsonError(c, fiber.StatusBadRequest, "Dance class name already registered")

	case err == nil:
		// Unverified leftover: treat as a resumed/corrected registration.
		taken, herr := ctrl.contactTaken(c, body.Email, body.Phone, &existing.StudioID)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email or phone already registered")
		}

		hashed, herr := service.HashPassword(body.Password)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
		}
		existing.StudioEmail = body.Email
		existing.StudioPhone = body.Phone
		existing.StudioPassword = hashed

		code, herr := issueEmailVerificationOtp(&existing)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate OTP")
		}
		if serr := ctrl.DB.WithContext(c.Context()).Save(&existing).Error; serr != nil {
			if helper.IsUniqueViolation(serr) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Email or phone already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration")
		}
		ctrl.Notifier.SendEmailAsync(existing.StudioEmail, "Verify your RhythmFlow account", otpEmailBody(code))

		return helper.JsonOK(c, "Registration updated. Verification OTP sent to your email.", fiber.Map{
			"studio": dto.ToStudioResponse(&existing),
		})

	case errors.Is(err, gorm.ErrRecordNotFound):
		taken, herr := ctrl.contactTaken(c, body.Email, body.Phone, nil)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email or phone already registered")
		}

		hashed, herr := service.HashPassword(body.Password)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
		}
		studio := model.StudioModel{
			StudioClassName: body.ClassName,
			StudioEmail:     body.Email,
			StudioPhone:     body.Phone,
			StudioPassword:  hashed,
		}
		code, herr := issueEmailVerificationOtp(&studio)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate OTP")
		}
		if cerr := ctrl.DB.WithContext(c.Context()).Create(&studio).Error; cerr != nil {
			if helper.IsUniqueViolation(cerr) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Dance class name, email or phone already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create studio")
		}
		ctrl.Notifier.SendEmailAsync(studio.StudioEmail, "Verify your RhythmFlow account", otpEmailBody(code))

		return helper.JsonCreated(c, "Registration successful. Verification OTP sent to your email.", fiber.Map{
			"studio": dto.ToStudioResponse(&studio),
		})

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
}

// contactTaken checks email/phone uniqueness across other studios. The
// error is the raw query error; callers decide the response.
func (ctrl *AuthController) contactTaken(c *fiber.Ctx, email, phone string, excludeID interface{ String() string }) (bool, error) {
	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudioModel{}).
		Where("studio_email = ? OR studio_phone = ?", email, phone)
	if excludeID != nil {
		tx = tx.Where("studio_id <> ?", excludeID.String())
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var studio model.StudioModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("studio_class_name = ?", strings.TrimSpace(body.ClassName)).
		First(&studio).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class name or password")
	}
	if err := service.CheckPasswordHash(studio.StudioPassword, body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class name or password")
	}

	if !studio.StudioEmailVerified {
		code, err := issueEmailVerificationOtp(&studio)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate OTP")
		}
		if err := ctrl.DB.WithContext(c.Context()).Save(&studio).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		ctrl.Notifier.SendEmailAsync(studio.StudioEmail, "Verify your RhythmFlow account", otpEmailBody(code))

		return helper.JsonOK(c, "Email not verified. A new OTP has been sent.", fiber.Map{
			"requires_verification": true,
			"studio":                dto.ToStudioResponse(&studio),
		})
	}

	token, err := service.CreateLoginToken(studio.StudioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create token")
	}
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token":  token,
		"studio": dto.ToStudioResponse(&studio),
	})
}

// POST /api/auth/verify-email
func (ctrl *AuthController) VerifyEmail(c *fiber.Ctx) error {
	var body dto.VerifyEmailRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	identifier := strings.TrimSpace(body.Identifier)
	var studio model.StudioModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("studio_class_name = ? OR studio_email = ?", identifier, strings.ToLower(identifier)).
		First(&studio).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Studio not found")
	}

	if helper.OTPExpired(studio.StudioEmailVerificationOtpExpires, time.Now().UTC()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "OTP expired. Please request a new one.")
	}
	if !helper.OTPMatches(studio.StudioEmailVerificationOtp, body.Otp) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid OTP")
	}

	studio.StudioEmailVerified = true
	studio.StudioEmailVerificationOtp = nil
	studio.StudioEmailVerificationOtpExpires = nil
	if err := ctrl.DB.WithContext(c.Context()).Save(&studio).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	token, err := service.CreateLoginToken(studio.StudioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create token")
	}
	return helper.JsonOK(c, "Email verified", fiber.Map{
		"token":  token,
		"studio": dto.ToStudioResponse(&studio),
	})
}

// POST /api/auth/forgot-password
// Awaited dispatch: this path must confirm delivery before responding.
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var body dto.ForgotPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studio, err := ctrl.findByIdentifier(c, body.Identifier)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Studio not found")
	}

	code, err := helper.GenerateOTP()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate OTP")
	}
	expires := helper.OTPExpiry()
	studio.StudioResetOtp = &code
	studio.StudioResetOtpExpires = &expires
	if err := ctrl.DB.WithContext(c.Context()).Save(studio).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := ctrl.Notifier.Email.SendEmail(c.Context(), studio.StudioEmail, "RhythmFlow password reset", otpEmailBody(code)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send reset OTP")
	}

	// Generic message: never echoes which identifier field matched.
	return helper.JsonOK(c, "A password reset OTP has been sent.", nil)
}

// POST /api/auth/reset-password-otp
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var body dto.ResetPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studio, err := ctrl.findByIdentifier(c, body.Identifier)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid or expired OTP")
	}
	if helper.OTPExpired(studio.StudioResetOtpExpires, time.Now().UTC()) ||
		!helper.OTPMatches(studio.StudioResetOtp, body.Otp) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid or expired OTP")
	}

	hashed, err := service.HashPassword(body.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	studio.StudioPassword = hashed
	studio.StudioResetOtp = nil
	studio.StudioResetOtpExpires = nil
	if err := ctrl.DB.WithContext(c.Context()).Save(studio).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonUpdated(c, "Password reset successfully", nil)
}

// findByIdentifier matches class name, email or phone (any one).
func (ctrl *AuthController) findByIdentifier(c *fiber.Ctx, identifier string) (*model.StudioModel, error) {
	identifier = strings.TrimSpace(identifier)
	var studio model.StudioModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("studio_class_name = ? OR studio_email = ? OR studio_phone = ?",
			identifier, strings.ToLower(identifier), identifier).
		First(&studio).Error
	if err != nil {
		return nil, err
	}
	return &studio, nil
}
