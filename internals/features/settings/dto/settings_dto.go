package dto

// UpdateSettingsRequest is a partial merge over the settings row.
type UpdateSettingsRequest struct {
	OwnerName           *string  `json:"owner_name"`
	ContactEmail        *string  `json:"contact_email" validate:"omitempty,email"`
	ContactPhone        *string  `json:"contact_phone"`
	DefaultMonthlyFee   *float64 `json:"default_monthly_fee" validate:"omitempty,gte=0"`
	MonthStartDay       *int     `json:"month_start_day" validate:"omitempty,min=1,max=28"`
	HideInactive        *bool    `json:"hide_inactive"`
	FeeReminderTemplate *string  `json:"fee_reminder_template"`
}
