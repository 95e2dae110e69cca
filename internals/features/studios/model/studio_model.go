package model

import (
	"time"

	"github.com/google/uuid"
)

// StudioModel is the tenant root: one row per registered dance studio.
// Every other entity carries a studio_id foreign reference to it.
type StudioModel struct {
	StudioID        uuid.UUID `gorm:"column:studio_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"studio_id"`
	StudioClassName string    `gorm:"column:studio_class_name;type:varchar(100);not null;uniqueIndex" json:"studio_class_name"`
	StudioEmail     string    `gorm:"column:studio_email;type:varchar(255);not null;uniqueIndex" json:"studio_email"`
	StudioPhone     string    `gorm:"column:studio_phone;type:varchar(20);not null;uniqueIndex" json:"studio_phone"`
	StudioPassword  string    `gorm:"column:studio_password;type:varchar(255);not null" json:"-"`

	StudioEmailVerified bool `gorm:"column:studio_email_verified;not null;default:false" json:"studio_email_verified"`

	// Email verification flow (register & login)
	StudioEmailVerificationOtp        *string    `gorm:"column:studio_email_verification_otp;type:varchar(6)" json:"-"`
	StudioEmailVerificationOtpExpires *time.Time `gorm:"column:studio_email_verification_otp_expires" json:"-"`

	// Forgot password flow
	StudioResetOtp        *string    `gorm:"column:studio_reset_otp;type:varchar(6)" json:"-"`
	StudioResetOtpExpires *time.Time `gorm:"column:studio_reset_otp_expires" json:"-"`

	// Profile update OTP flow (settings page)
	StudioPendingEmail      *string    `gorm:"column:studio_pending_email;type:varchar(255)" json:"-"`
	StudioPendingPhone      *string    `gorm:"column:studio_pending_phone;type:varchar(20)" json:"-"`
	StudioProfileOtp        *string    `gorm:"column:studio_profile_otp;type:varchar(6)" json:"-"`
	StudioProfileOtpExpires *time.Time `gorm:"column:studio_profile_otp_expires" json:"-"`

	StudioCreatedAt time.Time `gorm:"column:studio_created_at;not null;autoCreateTime" json:"studio_created_at"`
	StudioUpdatedAt time.Time `gorm:"column:studio_updated_at;not null;autoUpdateTime" json:"studio_updated_at"`
}

func (StudioModel) TableName() string { return "studios" }
