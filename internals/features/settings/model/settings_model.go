package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFeeReminderTemplate is the message sent to parents when a fee is
// due; placeholders are substituted at render time.
const DefaultFeeReminderTemplate = "Dear {parentName}, the fee of Rs.{amount} for {studentName} ({month}) is due. Please pay at your earliest convenience. - {studioName}"

// StudioSettingsModel holds per-studio preferences, one row per studio,
// created lazily on first read.
type StudioSettingsModel struct {
	SettingsID       uuid.UUID `gorm:"column:settings_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"settings_id"`
	SettingsStudioID uuid.UUID `gorm:"column:settings_studio_id;type:uuid;not null;uniqueIndex" json:"settings_studio_id"`

	SettingsOwnerName    string `gorm:"column:settings_owner_name;type:varchar(100);not null;default:''" json:"settings_owner_name"`
	SettingsContactEmail string `gorm:"column:settings_contact_email;type:varchar(255);not null;default:''" json:"settings_contact_email"`
	SettingsContactPhone string `gorm:"column:settings_contact_phone;type:varchar(20);not null;default:''" json:"settings_contact_phone"`

	SettingsDefaultMonthlyFee   float64 `gorm:"column:settings_default_monthly_fee;not null;default:0" json:"settings_default_monthly_fee"`
	SettingsMonthStartDay       int     `gorm:"column:settings_month_start_day;not null;default:1" json:"settings_month_start_day"`
	SettingsHideInactive        bool    `gorm:"column:settings_hide_inactive;not null;default:true" json:"settings_hide_inactive"`
	SettingsFeeReminderTemplate string  `gorm:"column:settings_fee_reminder_template;type:text;not null" json:"settings_fee_reminder_template"`

	SettingsCreatedAt time.Time `gorm:"column:settings_created_at;not null;autoCreateTime" json:"settings_created_at"`
	SettingsUpdatedAt time.Time `gorm:"column:settings_updated_at;not null;autoUpdateTime" json:"settings_updated_at"`
}

func (StudioSettingsModel) TableName() string { return "studio_settings" }
