package dto

import (
	"strings"
	"time"

	"rhythmflow_backend/internals/features/studios/model"
)

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	ClassName string `json:"class_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	Password  string `json:"password" validate:"required,min=6"`
}

func (r *RegisterRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

type LoginRequest struct {
	ClassName string `json:"class_name" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	// Identifier is the class name or the email the OTP was sent to.
	Identifier string `json:"identifier" validate:"required"`
	Otp        string `json:"otp" validate:"required,len=6,numeric"`
}

type ForgotPasswordRequest struct {
	// Identifier is any one of class name, email or phone.
	Identifier string `json:"identifier" validate:"required"`
}

type ResetPasswordRequest struct {
	Identifier  string `json:"identifier" validate:"required"`
	Otp         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type UpdateProfileRequest struct {
	ClassName *string `json:"class_name" validate:"omitempty,min=2,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=7,max=20"`
}

type VerifyProfileOtpRequest struct {
	Otp string `json:"otp" validate:"required,len=6,numeric"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

/* ===================== RESPONSES ===================== */

// StudioResponse carries the public fields only; the password hash and OTP
// columns never cross the API boundary.
type StudioResponse struct {
	StudioID            string    `json:"studio_id"`
	StudioClassName     string    `json:"studio_class_name"`
	StudioEmail         string    `json:"studio_email"`
	StudioPhone         string    `json:"studio_phone"`
	StudioEmailVerified bool      `json:"studio_email_verified"`
	StudioCreatedAt     time.Time `json:"studio_created_at"`
}

func ToStudioResponse(m *model.StudioModel) StudioResponse {
	return StudioResponse{
		StudioID:            m.StudioID.String(),
		StudioClassName:     m.StudioClassName,
		StudioEmail:         m.StudioEmail,
		StudioPhone:         m.StudioPhone,
		StudioEmailVerified: m.StudioEmailVerified,
		StudioCreatedAt:     m.StudioCreatedAt,
	}
}
