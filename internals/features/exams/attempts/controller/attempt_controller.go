package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barprep_backend/internals/features/exams/attempts/dto"
	"barprep_backend/internals/features/exams/attempts/model"
	"barprep_backend/internals/features/exams/attempts/service"
	examService "barprep_backend/internals/features/exams/exams/service"
	helper "barprep_backend/internals/helpers"
	authMiddleware "barprep_backend/internals/middlewares/auth"
)

var validateAttempt = validator.New()

type AttemptController struct {
	DB *gorm.DB
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{DB: db}
}

// =======================
// Submit a scored attempt
// POST /exams/submit
// =======================
func (ctrl *AttemptController) SubmitAttempt(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	var body dto.SubmitExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttempt.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	input := service.SubmitInput{
		TotalQuestions:  body.TotalQuestions,
		AnsweredCount:   body.AnsweredCount,
		CorrectCount:    body.CorrectCount,
		IncorrectCount:  body.IncorrectCount,
		UnansweredCount: body.UnansweredCount,
		Score:           body.Score,
		Answers:         body.Answers,
	}
	if err := service.ValidateTotals(input); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"totals": {err.Error()},
		})
	}

	examType, pricingType, examSet, err := examService.ParseFrontendExamID(body.ExamID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}
	exam, err := examService.ResolveOrCreateExam(ctrl.DB, examType, pricingType, examSet)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve exam")
	}

	userName, _ := c.Locals("user_name").(string)
	userEmail, _ := c.Locals("user_email").(string)

	result, err := service.SubmitAttempt(ctrl.DB, userID, userName, userEmail, exam, input)
	if err != nil {
		if service.IsForbidden(err) {
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attempt")
	}

	return helper.JsonCreated(c, "Attempt recorded", dto.SubmitExamResponse{
		AttemptID:         result.Attempt.AttemptID.String(),
		RemainingAttempts: result.RemainingAttempts,
	})
}

// =======================
// Purchased exams
// GET /exams/purchased — empty list for anonymous callers, not a 401
// =======================
func (ctrl *AttemptController) ListPurchased(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonOK(c, "", []dto.PurchasedExamDTO{})
	}

	purchased, err := service.ListPurchasedExams(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch purchases")
	}

	resp := make([]dto.PurchasedExamDTO, 0, len(purchased))
	for _, p := range purchased {
		resp = append(resp, dto.ToPurchasedExamDTO(p))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// Access pre-check before rendering an exam
// GET /exams/:frontendId/access
// =======================
func (ctrl *AttemptController) CheckAccess(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	examType, pricingType, examSet, err := examService.ParseFrontendExamID(c.Params("frontendId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}
	exam, err := examService.ResolveOrCreateExam(ctrl.DB, examType, pricingType, examSet)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve exam")
	}

	decision, err := service.CheckAccess(ctrl.DB, userID, exam, authMiddleware.IsAdmin(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check access")
	}
	return helper.JsonOK(c, "", decision)
}

// =======================
// Attempt history
// =======================
func (ctrl *AttemptController) ListMyAttempts(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ExamAttemptModel{}).
		Where("attempt_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attempts")
	}

	var attempts []model.ExamAttemptModel
	if err := ctrl.DB.Where("attempt_user_id = ?", userID).
		Order("attempt_submitted_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	resp := make([]dto.AttemptDTO, 0, len(attempts))
	for _, a := range attempts {
		resp = append(resp, dto.ToAttemptDTO(a, false))
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *AttemptController) GetAttempt(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	var attempt model.ExamAttemptModel
	err = ctrl.DB.First(&attempt, "attempt_id = ?", c.Params("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Attempt not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempt")
	}

	if attempt.AttemptUserID != userID && !authMiddleware.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "This attempt belongs to another user")
	}
	return helper.JsonOK(c, "", dto.ToAttemptDTO(attempt, true))
}
