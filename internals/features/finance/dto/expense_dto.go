package dto

import "strings"

type CreateExpenseRequest struct {
	Title    string  `json:"title" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Category string  `json:"category"`
}

func (r *CreateExpenseRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		r.Category = "General"
	}
}
