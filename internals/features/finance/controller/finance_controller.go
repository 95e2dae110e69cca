package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rhythmflow_backend/internals/features/finance/dto"
	"rhythmflow_backend/internals/features/finance/model"
	"rhythmflow_backend/internals/features/finance/service"
	studentModel "rhythmflow_backend/internals/features/students/model"
	helper "rhythmflow_backend/internals/helpers"
	authMiddleware "rhythmflow_backend/internals/middlewares/auth"
)

var validate = validator.New()

type FinanceController struct {
	DB *gorm.DB
}

func NewFinanceController(db *gorm.DB) *FinanceController {
	return &FinanceController{DB: db}
}

func (ctrl *FinanceController) loadStudioData(c *fiber.Ctx, studioID uuid.UUID) ([]studentModel.StudentModel, []model.ExpenseModel, error) {
	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_studio_id = ? AND student_is_active = ?", studioID, true).
		Find(&students).Error; err != nil {
		return nil, nil, err
	}

	var expenses []model.ExpenseModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("expense_studio_id = ?", studioID).
		Order("expense_created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, nil, err
	}
	return students, expenses, nil
}

// GET /api/finance/summary
func (ctrl *FinanceController) Summary(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	students, expenses, err := ctrl.loadStudioData(c, studioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch finance data")
	}

	var totalExpected, totalCollected float64
	for _, s := range students {
		totalExpected += s.StudentMonthlyFee
		if s.StudentIsPaid {
			totalCollected += s.StudentMonthlyFee
		}
	}
	var totalExpenses float64
	for _, e := range expenses {
		totalExpenses += e.ExpenseAmount
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"total_expected":  totalExpected,
		"total_collected": totalCollected,
		"pending":         totalExpected - totalCollected,
		"total_expenses":  totalExpenses,
		"profit":          totalCollected - totalExpenses,
		"expenses":        expenses,
	})
}

// GET /api/finance/monthly?months=N
// Income lands in the month the fee was last collected; expenses in the
// month they were recorded.
func (ctrl *FinanceController) Monthly(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	students, expenses, err := ctrl.loadStudioData(c, studioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch finance data")
	}

	months := service.ClampMonths(c.Query("months"))
	buckets := service.LastMonths(time.Now(), months)

	series := make([]fiber.Map, 0, len(buckets))
	for _, b := range buckets {
		var income, spent float64
		for _, s := range students {
			if s.StudentLastPaid != nil && b.Contains(*s.StudentLastPaid) {
				income += s.StudentMonthlyFee
			}
		}
		for _, e := range expenses {
			if b.Contains(e.ExpenseCreatedAt) {
				spent += e.ExpenseAmount
			}
		}
		series = append(series, fiber.Map{
			"month":    b.Label(),
			"income":   income,
			"expenses": spent,
			"profit":   income - spent,
		})
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"months": months,
		"series": series,
	})
}

// POST /api/finance/expense
func (ctrl *FinanceController) AddExpense(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateExpenseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	expense := model.ExpenseModel{
		ExpenseStudioID: studioID,
		ExpenseTitle:    body.Title,
		ExpenseAmount:   body.Amount,
		ExpenseCategory: body.Category,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&expense).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create expense")
	}

	return helper.JsonCreated(c, "Expense recorded", expense)
}

// DELETE /api/finance/expense/:id
func (ctrl *FinanceController) DeleteExpense(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("expense_id = ? AND expense_studio_id = ?", c.Params("id"), studioID).
		Delete(&model.ExpenseModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete expense")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Expense not found")
	}

	return helper.JsonDeleted(c, "Expense deleted", fiber.Map{"expense_id": c.Params("id")})
}
