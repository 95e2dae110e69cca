package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel belongs to exactly one studio. Inactive students keep their
// history but drop out of attendance and finance denominators. The paid flag
// and last paid date are owned by the payment endpoints.
type StudentModel struct {
	StudentID         uuid.UUID  `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentStudioID   uuid.UUID  `gorm:"column:student_studio_id;type:uuid;not null;index" json:"student_studio_id"`
	StudentName       string     `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentParentName string     `gorm:"column:student_parent_name;type:varchar(100);not null;default:''" json:"student_parent_name"`
	StudentPhone      string     `gorm:"column:student_phone;type:varchar(20);not null;default:''" json:"student_phone"`
	StudentEmail      string     `gorm:"column:student_email;type:varchar(255);not null;default:''" json:"student_email"`
	StudentMonthlyFee float64    `gorm:"column:student_monthly_fee;not null;default:0" json:"student_monthly_fee"`
	StudentIsActive   bool       `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`
	StudentIsPaid     bool       `gorm:"column:student_is_paid;not null;default:false" json:"student_is_paid"`
	StudentLastPaid   *time.Time `gorm:"column:student_last_paid_date" json:"student_last_paid_date"`
	StudentBatchID    *uuid.UUID `gorm:"column:student_batch_id;type:uuid;index" json:"student_batch_id"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
