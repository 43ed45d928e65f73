package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/exams/exams/dto"
	"barprep_backend/internals/features/exams/exams/model"
	"barprep_backend/internals/features/exams/exams/service"
	helper "barprep_backend/internals/helpers"
)

var validateExam = validator.New()

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

// =======================
// List existing exams (public catalog)
// =======================
func (ctrl *ExamController) ListExams(c *fiber.Ctx) error {
	var exams []model.ExamModel
	if err := ctrl.DB.Order("exam_type, exam_pricing_type, exam_set").Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exams")
	}

	resp := make([]dto.ExamDTO, 0, len(exams))
	for i := range exams {
		resp = append(resp, dto.ToExamDTO(&exams[i]))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// Get one exam by frontend id (resolve-or-create)
// =======================
func (ctrl *ExamController) GetExam(c *fiber.Ctx) error {
	exam, err := ctrl.resolveParam(c)
	if err != nil {
		return ctrl.examError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToExamDTO(exam))
}

// =======================
// Update exam settings (admin)
// =======================
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	exam, err := ctrl.resolveParam(c)
	if err != nil {
		return ctrl.examError(c, err)
	}

	var body dto.UpdateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateExam.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := map[string]any{}
	if body.Title != nil {
		updates["exam_title"] = *body.Title
	}
	if body.Description != nil {
		updates["exam_description"] = *body.Description
	}
	if body.Price != nil {
		updates["exam_price"] = *body.Price
	}
	if body.ExamTime != nil {
		updates["exam_time"] = *body.ExamTime
	}
	if body.AttemptCount != nil {
		if *body.AttemptCount == 0 {
			updates["exam_attempt_count"] = nil // unlimited
		} else {
			updates["exam_attempt_count"] = *body.AttemptCount
		}
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(exam).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update exam")
	}

	var fresh model.ExamModel
	if err := ctrl.DB.First(&fresh, "exam_id = ?", exam.ExamID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload exam")
	}
	return helper.JsonUpdated(c, "Exam updated", dto.ToExamDTO(&fresh))
}

// resolveParam maps the :frontendId path segment to an exam row, creating
// the row on first access.
func (ctrl *ExamController) resolveParam(c *fiber.Ctx) (*model.ExamModel, error) {
	examType, pricingType, examSet, err := service.ParseFrontendExamID(c.Params("frontendId"))
	if err != nil {
		return nil, err
	}
	return service.ResolveOrCreateExam(ctrl.DB, examType, pricingType, examSet)
}

func (ctrl *ExamController) examError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrInvalidExamIdentity) {
		return helper.JsonError(c, fiber.StatusNotFound, "Unknown exam")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve exam")
}
