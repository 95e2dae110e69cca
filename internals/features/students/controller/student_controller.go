package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "rhythmflow_backend/internals/features/batches/model"
	"rhythmflow_backend/internals/features/students/dto"
	"rhythmflow_backend/internals/features/students/model"
	helper "rhythmflow_backend/internals/helpers"
	authMiddleware "rhythmflow_backend/internals/middlewares/auth"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// batchBelongsToStudio guards against cross-tenant batch assignment.
func (ctrl *StudentController) batchBelongsToStudio(c *fiber.Ctx, batchID, studioID uuid.UUID) (bool, error) {
	var count int64
	err := ctrl.DB.WithContext(c.Context()).
		Model(&batchModel.BatchModel{}).
		Where("batch_id = ? AND batch_studio_id = ?", batchID, studioID).
		Count(&count).Error
	return count > 0, err
}

// POST /api/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if body.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student name is required")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.BatchID != nil {
		ok, berr := ctrl.batchBelongsToStudio(c, *body.BatchID, studioID)
		if berr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch for this studio")
		}
	}

	student := model.StudentModel{
		StudentStudioID:   studioID,
		StudentName:       body.Name,
		StudentParentName: body.ParentName,
		StudentPhone:      body.Phone,
		StudentEmail:      body.Email,
		StudentMonthlyFee: body.MonthlyFee,
		StudentIsActive:   true,
		StudentBatchID:    body.BatchID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created", student)
}

// GET /api/students?batch=<id>
func (ctrl *StudentController) GetStudents(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	tx := ctrl.DB.WithContext(c.Context()).
		Where("student_studio_id = ?", studioID)

	if batch := c.Query("batch"); batch != "" {
		batchID, perr := uuid.Parse(batch)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
		}
		tx = tx.Where("student_batch_id = ?", batchID)
	}

	var students []model.StudentModel
	if err := tx.Order("student_created_at DESC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.JsonOK(c, "ok", students)
}

// GET /api/students/:id
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ? AND student_studio_id = ?", c.Params("id"), studioID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonOK(c, "ok", student)
}

// PUT /api/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ? AND student_studio_id = ?", c.Params("id"), studioID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.BatchID != nil {
		ok, berr := ctrl.batchBelongsToStudio(c, *body.BatchID, studioID)
		if berr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch for this studio")
		}
		student.StudentBatchID = body.BatchID
	}
	if body.Name != nil {
		if *body.Name == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student name is required")
		}
		student.StudentName = *body.Name
	}
	if body.ParentName != nil {
		student.StudentParentName = *body.ParentName
	}
	if body.Phone != nil {
		student.StudentPhone = *body.Phone
	}
	if body.Email != nil {
		student.StudentEmail = *body.Email
	}
	if body.MonthlyFee != nil {
		student.StudentMonthlyFee = *body.MonthlyFee
	}
	if body.IsActive != nil {
		student.StudentIsActive = *body.IsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated", student)
}

// DELETE /api/students/:id
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	studioID, err := authMiddleware.GetStudioID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ? AND student_studio_id = ?", c.Params("id"), studioID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": c.Params("id")})
}
