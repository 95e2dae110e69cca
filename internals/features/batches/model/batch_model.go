package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BatchModel is a named class slot inside a studio. The normalized name
// enforces case-insensitive uniqueness per studio.
type BatchModel struct {
	BatchID             uuid.UUID      `gorm:"column:batch_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"batch_id"`
	BatchStudioID       uuid.UUID      `gorm:"column:batch_studio_id;type:uuid;not null;index;uniqueIndex:uq_batches_studio_normalized_name" json:"batch_studio_id"`
	BatchName           string         `gorm:"column:batch_name;type:varchar(100);not null" json:"batch_name"`
	BatchNormalizedName string         `gorm:"column:batch_normalized_name;type:varchar(100);not null;uniqueIndex:uq_batches_studio_normalized_name" json:"batch_normalized_name"`
	BatchTiming         string         `gorm:"column:batch_timing;type:varchar(100);not null;default:''" json:"batch_timing"`
	BatchDays           pq.StringArray `gorm:"column:batch_days;type:text[];not null" json:"batch_days"`

	BatchCreatedAt time.Time `gorm:"column:batch_created_at;not null;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt time.Time `gorm:"column:batch_updated_at;not null;autoUpdateTime" json:"batch_updated_at"`
}

func (BatchModel) TableName() string { return "batches" }
