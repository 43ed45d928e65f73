package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationService "barprep_backend/internals/features/admin/notifications/service"
	examModel "barprep_backend/internals/features/exams/exams/model"
	examService "barprep_backend/internals/features/exams/exams/service"
	"barprep_backend/internals/features/exams/questions/dto"
	"barprep_backend/internals/features/exams/questions/model"
	helper "barprep_backend/internals/helpers"
)

var validateQuestion = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// =======================
// List questions of one exam (admin)
// Query: ?exam_type=&pricing_type=&exam_set=
// =======================
func (ctrl *QuestionController) ListQuestions(c *fiber.Ctx) error {
	exam, err := ctrl.resolveExamFromQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	questions, err := ctrl.loadExamQuestions(exam.ExamID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	resp := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, dto.ToQuestionDTO(q))
	}
	return helper.JsonOK(c, "", fiber.Map{
		"exam_id":     exam.ExamID,
		"frontend_id": examService.FrontendExamID(exam),
		"questions":   resp,
	})
}

// =======================
// Create question (admin)
// =======================
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if !dto.HasCorrectOption(body.Options) {
		return helper.JsonValidationError(c, map[string][]string{
			"options": {"at least one option must be marked correct"},
		})
	}

	exam, err := examService.ResolveOrCreateExam(ctrl.DB, body.ExamType, body.PricingType, body.ExamSet)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam identity")
	}

	question := model.QuestionModel{
		QuestionExamID:   exam.ExamID,
		QuestionText:     strings.TrimSpace(body.Text),
		QuestionPosition: body.Position,
	}
	for i, o := range body.Options {
		question.Options = append(question.Options, model.OptionModel{
			OptionText:      strings.TrimSpace(o.Text),
			OptionIsCorrect: o.IsCorrect,
			OptionPosition:  i,
		})
	}

	if err := ctrl.DB.Create(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	notificationService.RecordActivity(ctrl.DB, notificationService.Activity{
		ID:          notificationService.ActivityID("question", question.QuestionID),
		Type:        "question",
		Action:      "added",
		Description: fmt.Sprintf("A question was added to %s", exam.ExamTitle),
		Metadata: map[string]any{
			"exam_id":     exam.ExamID.String(),
			"question_id": question.QuestionID.String(),
		},
		Time: question.CreatedAt,
	})

	return helper.JsonCreated(c, "Question created", dto.ToQuestionDTO(question))
}

// =======================
// Update question (admin)
// Replacing the option set is all-or-nothing.
// =======================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if body.Options != nil && !dto.HasCorrectOption(body.Options) {
		return helper.JsonValidationError(c, map[string][]string{
			"options": {"at least one option must be marked correct"},
		})
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if body.Text != nil {
			updates["question_text"] = strings.TrimSpace(*body.Text)
		}
		if body.Position != nil {
			updates["question_position"] = *body.Position
		}
		if len(updates) > 0 {
			if err := tx.Model(&question).Updates(updates).Error; err != nil {
				return err
			}
		}

		if body.Options != nil {
			if err := tx.Where("option_question_id = ?", question.QuestionID).
				Delete(&model.OptionModel{}).Error; err != nil {
				return err
			}
			for i, o := range body.Options {
				opt := model.OptionModel{
					OptionQuestionID: question.QuestionID,
					OptionText:       strings.TrimSpace(o.Text),
					OptionIsCorrect:  o.IsCorrect,
					OptionPosition:   i,
				}
				if err := tx.Create(&opt).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	var fresh model.QuestionModel
	if err := ctrl.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("option_position")
	}).First(&fresh, "question_id = ?", question.QuestionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload question")
	}
	return helper.JsonUpdated(c, "Question updated", dto.ToQuestionDTO(fresh))
}

// =======================
// Delete question (admin)
// =======================
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("option_question_id = ?", question.QuestionID).
			Delete(&model.OptionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"question_id": id})
}

func (ctrl *QuestionController) resolveExamFromQuery(c *fiber.Ctx) (*examModel.ExamModel, error) {
	var examSet *string
	if s := strings.TrimSpace(c.Query("exam_set")); s != "" {
		upper := strings.ToUpper(s)
		examSet = &upper
	}
	return examService.ResolveOrCreateExam(ctrl.DB, c.Query("exam_type"), c.Query("pricing_type"), examSet)
}

func (ctrl *QuestionController) loadExamQuestions(examID uuid.UUID) ([]model.QuestionModel, error) {
	var questions []model.QuestionModel
	err := ctrl.DB.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("option_position")
	}).Where("question_exam_id = ?", examID).
		Order("question_position").
		Find(&questions).Error
	return questions, err
}
