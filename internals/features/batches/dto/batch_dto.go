package dto

import (
	"fmt"
	"strings"

	"rhythmflow_backend/internals/features/batches/model"
)

// Weekday tokens accepted for batch_days, in schedule order.
var WeekdayTokens = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type CreateBatchRequest struct {
	Name   string   `json:"name" validate:"required"`
	Timing string   `json:"timing"`
	Days   []string `json:"days" validate:"required,min=1"`
}

type UpdateBatchRequest struct {
	Name   *string   `json:"name"`
	Timing *string   `json:"timing"`
	Days   *[]string `json:"days"`
}

// NormalizeName lowercases and trims a batch name the same way the stored
// normalized column does.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateDays checks the set is non-empty and drawn only from the seven
// weekday tokens; the error names every invalid token.
func ValidateDays(days []string) error {
	if len(days) == 0 {
		return fmt.Errorf("days must not be empty")
	}
	valid := make(map[string]struct{}, len(WeekdayTokens))
	for _, d := range WeekdayTokens {
		valid[d] = struct{}{}
	}
	var invalid []string
	for _, d := range days {
		if _, ok := valid[d]; !ok {
			invalid = append(invalid, d)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid day tokens: %s", strings.Join(invalid, ", "))
	}
	return nil
}

type BatchResponse struct {
	BatchID        string   `json:"batch_id"`
	BatchName      string   `json:"batch_name"`
	BatchTiming    string   `json:"batch_timing"`
	BatchDays      []string `json:"batch_days"`
	BatchCreatedAt string   `json:"batch_created_at"`
}

func ToBatchResponse(m *model.BatchModel) BatchResponse {
	return BatchResponse{
		BatchID:        m.BatchID.String(),
		BatchName:      m.BatchName,
		BatchTiming:    m.BatchTiming,
		BatchDays:      m.BatchDays,
		BatchCreatedAt: m.BatchCreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToBatchResponseList(rows []model.BatchModel) []BatchResponse {
	out := make([]BatchResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToBatchResponse(&rows[i]))
	}
	return out
}
