package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "rhythmflow_backend/internals/features/students/model"
	helper "rhythmflow_backend/internals/helpers"
	authMiddleware "rhythmflow_backend/internals/middlewares/auth"
)

// PaymentController flips the monthly paid flag on students. The flag is
// a per-cycle marker, reset in bulk at the start of a new fee period.
type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func (ctrl *PaymentController) ownedStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ? AND student_studio_id = ?", c.Params("id"), studioID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	return &student, nil
}

// PUT /api/payments/pay/:id
func (ctrl *PaymentController) MarkPaid(c *fiber.Ctx) error {
	student, err := ctrl.ownedStudent(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	now := time.Now().UTC()
	student.StudentIsPaid = true
	student.StudentLastPaid = &now
	if err := ctrl.DB.WithContext(c.Context()).Save(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment")
	}

	return helper.JsonUpdated(c, "Payment recorded", student)
}

// PUT /api/payments/unpay/:id
func (ctrl *PaymentController) MarkUnpaid(c *fiber.Ctx) error {
	student, err := ctrl.ownedStudent(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	student.StudentIsPaid = false
	student.StudentLastPaid = nil
	if err := ctrl.DB.WithContext(c.Context()).Save(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment")
	}

	return helper.JsonUpdated(c, "Payment reverted", student)
}

// PUT /api/payments/reset
// Opens a new fee cycle: every active student goes back to unpaid while
// last_paid_date keeps the previous cycle's history.
func (ctrl *PaymentController) ResetAll(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&studentModel.StudentModel{}).
		Where("student_studio_id = ? AND student_is_active = ?", studioID, true).
		Update("student_is_paid", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset payments")
	}

	return helper.JsonUpdated(c, "Payments reset for new cycle", fiber.Map{
		"students_reset": res.RowsAffected,
	})
}

// GET /api/payments
func (ctrl *PaymentController) GetStatus(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_studio_id = ? AND student_is_active = ?", studioID, true).
		Order("student_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	paid := make([]studentModel.StudentModel, 0)
	unpaid := make([]studentModel.StudentModel, 0)
	for _, s := range students {
		if s.StudentIsPaid {
			paid = append(paid, s)
		} else {
			unpaid = append(unpaid, s)
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"total":        len(students),
		"paid_count":   len(paid),
		"unpaid_count": len(unpaid),
		"paid":         paid,
		"unpaid":       unpaid,
	})
}
