package model

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseModel struct {
	ExpenseID       uuid.UUID `gorm:"column:expense_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"expense_id"`
	ExpenseStudioID uuid.UUID `gorm:"column:expense_studio_id;type:uuid;not null;index" json:"expense_studio_id"`
	ExpenseTitle    string    `gorm:"column:expense_title;type:varchar(150);not null" json:"expense_title"`
	ExpenseAmount   float64   `gorm:"column:expense_amount;not null" json:"expense_amount"`
	ExpenseCategory string    `gorm:"column:expense_category;type:varchar(50);not null;default:'General'" json:"expense_category"`

	ExpenseCreatedAt time.Time `gorm:"column:expense_created_at;not null;autoCreateTime" json:"expense_created_at"`
	ExpenseUpdatedAt time.Time `gorm:"column:expense_updated_at;not null;autoUpdateTime" json:"expense_updated_at"`
}

func (ExpenseModel) TableName() string { return "expenses" }
