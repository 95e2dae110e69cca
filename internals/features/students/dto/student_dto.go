package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreateStudentRequest struct {
	Name       string     `json:"name" validate:"required"`
	ParentName string     `json:"parent_name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email" validate:"omitempty,email"`
	MonthlyFee float64    `json:"monthly_fee" validate:"omitempty,gte=0"`
	BatchID    *uuid.UUID `json:"batch_id"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ParentName = strings.TrimSpace(r.ParentName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
}

// UpdateStudentRequest is a partial merge: only supplied fields change.
type UpdateStudentRequest struct {
	Name       *string    `json:"name"`
	ParentName *string    `json:"parent_name"`
	Phone      *string    `json:"phone"`
	Email      *string    `json:"email" validate:"omitempty,email"`
	MonthlyFee *float64   `json:"monthly_fee" validate:"omitempty,gte=0"`
	IsActive   *bool      `json:"is_active"`
	BatchID    *uuid.UUID `json:"batch_id"`
}
