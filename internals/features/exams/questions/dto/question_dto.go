package dto

import (
	"barprep_backend/internals/features/exams/questions/model"
)

/* ===== Requests ===== */

type OptionInput struct {
	Text      string `json:"text" validate:"required,min=1"`
	IsCorrect bool   `json:"is_correct"`
}

// ExamKey addresses the exam a question belongs to. Free exams omit the set.
type ExamKey struct {
	ExamType    string  `json:"exam_type" validate:"required,oneof=BARRISTER SOLICITOR"`
	PricingType string  `json:"pricing_type" validate:"required,oneof=FREE PAID"`
	ExamSet     *string `json:"exam_set" validate:"omitempty,oneof=SET_A SET_B"`
}

type CreateQuestionRequest struct {
	ExamKey
	Text     string        `json:"text" validate:"required,min=3"`
	Position int           `json:"position" validate:"gte=0"`
	Options  []OptionInput `json:"options" validate:"required,min=2,dive"`
}

type UpdateQuestionRequest struct {
	Text     *string       `json:"text" validate:"omitempty,min=3"`
	Position *int          `json:"position" validate:"omitempty,gte=0"`
	Options  []OptionInput `json:"options" validate:"omitempty,min=2,dive"`
}

// HasCorrectOption enforces the invariant that at least one option per
// question is marked correct.
func HasCorrectOption(options []OptionInput) bool {
	for _, o := range options {
		if o.IsCorrect {
			return true
		}
	}
	return false
}

/* ===== Responses ===== */

// Admin view: includes correctness.
type OptionDTO struct {
	OptionID  string `json:"option_id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Position  int    `json:"position"`
}

type QuestionDTO struct {
	QuestionID string      `json:"question_id"`
	ExamID     string      `json:"exam_id"`
	Text       string      `json:"text"`
	Position   int         `json:"position"`
	Options    []OptionDTO `json:"options"`
}

// Candidate view: correctness stripped so the client cannot see answers.
type TakeOptionDTO struct {
	OptionID string `json:"option_id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type TakeQuestionDTO struct {
	QuestionID string          `json:"question_id"`
	Text       string          `json:"text"`
	Position   int             `json:"position"`
	Options    []TakeOptionDTO `json:"options"`
}

func ToQuestionDTO(q model.QuestionModel) QuestionDTO {
	options := make([]OptionDTO, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, OptionDTO{
			OptionID:  o.OptionID.String(),
			Text:      o.OptionText,
			IsCorrect: o.OptionIsCorrect,
			Position:  o.OptionPosition,
		})
	}
	return QuestionDTO{
		QuestionID: q.QuestionID.String(),
		ExamID:     q.QuestionExamID.String(),
		Text:       q.QuestionText,
		Position:   q.QuestionPosition,
		Options:    options,
	}
}

func ToTakeQuestionDTO(q model.QuestionModel) TakeQuestionDTO {
	options := make([]TakeOptionDTO, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, TakeOptionDTO{
			OptionID: o.OptionID.String(),
			Text:     o.OptionText,
			Position: o.OptionPosition,
		})
	}
	return TakeQuestionDTO{
		QuestionID: q.QuestionID.String(),
		Text:       q.QuestionText,
		Position:   q.QuestionPosition,
		Options:    options,
	}
}
