package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rhythmflow_backend/internals/features/attendance/dto"
	"rhythmflow_backend/internals/features/attendance/model"
	"rhythmflow_backend/internals/features/attendance/service"
	studentModel "rhythmflow_backend/internals/features/students/model"
	helper "rhythmflow_backend/internals/helpers"
	authMiddleware "rhythmflow_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

func (ctrl *AttendanceController) activeStudents(c *fiber.Ctx, studioID uuid.UUID) ([]studentModel.StudentModel, error) {
	var students []studentModel.StudentModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("student_studio_id = ? AND student_is_active = ?", studioID, true).
		Find(&students).Error
	return students, err
}

// POST /api/attendance
// One roster per (studio, date): a second save for the same day replaces
// the present set instead of adding a row.
func (ctrl *AttendanceController) SaveDay(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.SaveAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	present := body.DedupedPresent()

	// Every marked id must be an active student of this studio, or the
	// whole write is rejected.
	if len(present) > 0 {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&studentModel.StudentModel{}).
			Where("student_studio_id = ? AND student_is_active = ? AND student_id IN ?", studioID, true, present).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		if count != int64(len(present)) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Attendance contains unknown or inactive students")
		}
	}

	record := model.AttendanceModel{
		AttendanceStudioID:        studioID,
		AttendanceDate:            body.Date,
		AttendancePresentStudents: pq.StringArray(present),
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attendance_studio_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"attendance_present_students", "attendance_updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}

	return helper.JsonOK(c, "Attendance saved", record)
}

// GET /api/attendance?date=YYYY-MM-DD (defaults to today)
func (ctrl *AttendanceController) GetDay(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format(service.DateLayout)
	}
	if _, perr := time.Parse(service.DateLayout, date); perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	students, err := ctrl.activeStudents(c, studioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	present := []string{}
	var record model.AttendanceModel
	err = ctrl.DB.WithContext(c.Context()).
		Where("attendance_studio_id = ? AND attendance_date = ?", studioID, date).
		First(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	if err == nil {
		present = []string(record.AttendancePresentStudents)
	}

	presentSet := make(map[string]struct{}, len(present))
	for _, id := range present {
		presentSet[id] = struct{}{}
	}
	absentees := make([]studentModel.StudentModel, 0)
	for _, s := range students {
		if _, ok := presentSet[s.StudentID.String()]; !ok {
			absentees = append(absentees, s)
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"date":             date,
		"present_students": present,
		"absentees":        absentees,
		"total_students":   len(students),
		"present_count":    len(present),
		"absent_count":     len(absentees),
	})
}

// GET /api/attendance/weekly
// Fetches rosters created during the Monday-start window containing today,
// then buckets present counts by the weekday of each record's own date, so
// a backfilled roster counts on the day it describes.
func (ctrl *AttendanceController) Weekly(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	start, end := service.WeekWindow(time.Now())

	var records []model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_studio_id = ? AND attendance_created_at >= ? AND attendance_created_at < ?",
			studioID, start, end).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	days := make([]service.DayRecord, 0, len(records))
	for _, r := range records {
		days = append(days, service.DayRecord{Date: r.AttendanceDate, PresentCount: len(r.AttendancePresentStudents)})
	}
	buckets := service.WeekdayBuckets(days)

	series := make([]fiber.Map, 0, len(service.WeekdayOrder))
	for _, d := range service.WeekdayOrder {
		series = append(series, fiber.Map{"day": d, "present": buckets[d]})
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"week_start": start.Format(service.DateLayout),
		"week_end":   end.AddDate(0, 0, -1).Format(service.DateLayout),
		"days":       series,
	})
}

// GET /api/attendance/summary
func (ctrl *AttendanceController) MonthlySummary(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	students, err := ctrl.activeStudents(c, studioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	now := time.Now().UTC()
	curYear, curMonth := now.Year(), now.Month()
	prevYear, prevMonth := service.PrevMonth(curYear, curMonth)

	// Two calendar months is a narrow slice; fetch from the first of the
	// previous month and let the pure bucketing sort the rest out.
	lower := time.Date(prevYear, prevMonth, 1, 0, 0, 0, 0, time.UTC)
	var records []model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_studio_id = ? AND attendance_date >= ?", studioID, lower.Format(service.DateLayout)).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	days := make([]service.DayRecord, 0, len(records))
	for _, r := range records {
		days = append(days, service.DayRecord{Date: r.AttendanceDate, PresentCount: len(r.AttendancePresentStudents)})
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"active_students":     len(students),
		"current_month_rate":  service.MonthRate(days, len(students), curYear, curMonth),
		"previous_month_rate": service.MonthRate(days, len(students), prevYear, prevMonth),
	})
}
