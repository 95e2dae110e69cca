package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AttendanceModel is one roster per studio per calendar day, keyed by the
// (studio, date) unique index and upserted rather than duplicated.
type AttendanceModel struct {
	AttendanceID              uuid.UUID      `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceStudioID        uuid.UUID      `gorm:"column:attendance_studio_id;type:uuid;not null;uniqueIndex:uq_attendance_studio_date" json:"attendance_studio_id"`
	AttendanceDate            string         `gorm:"column:attendance_date;type:varchar(10);not null;uniqueIndex:uq_attendance_studio_date" json:"attendance_date"`
	AttendancePresentStudents pq.StringArray `gorm:"column:attendance_present_students;type:text[];not null" json:"attendance_present_students"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;not null;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;not null;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }
