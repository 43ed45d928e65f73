package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	attemptService "barprep_backend/internals/features/exams/attempts/service"
	examService "barprep_backend/internals/features/exams/exams/service"
	"barprep_backend/internals/features/exams/questions/dto"
	helper "barprep_backend/internals/helpers"
	authMiddleware "barprep_backend/internals/middlewares/auth"
)

// =======================
// Exam take view (candidate)
// GET /exams/:frontendId/questions — access-gated, answers stripped
// =======================
func (ctrl *QuestionController) GetExamQuestions(c *fiber.Ctx) error {
	examType, pricingType, examSet, err := examService.ParseFrontendExamID(c.Params("frontendId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Unknown exam")
	}

	exam, err := examService.ResolveOrCreateExam(ctrl.DB, examType, pricingType, examSet)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve exam")
	}

	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	decision, err := attemptService.CheckAccess(ctrl.DB, userID, exam, authMiddleware.IsAdmin(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check access")
	}
	if !decision.Allowed {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not have access to this exam")
	}

	questions, err := ctrl.loadExamQuestions(exam.ExamID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	resp := make([]dto.TakeQuestionDTO, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, dto.ToTakeQuestionDTO(q))
	}
	return helper.JsonOK(c, "", fiber.Map{
		"frontend_id":        examService.FrontendExamID(exam),
		"title":              exam.ExamTitle,
		"exam_time":          exam.ExamTime,
		"remaining_attempts": decision.RemainingAttempts,
		"questions":          resp,
	})
}
