package dto

import (
	"time"

	"barprep_backend/internals/features/exams/attempts/model"
	"barprep_backend/internals/features/exams/attempts/service"
	examService "barprep_backend/internals/features/exams/exams/service"
)

/* ===== Requests ===== */

type SubmitExamRequest struct {
	ExamID          string         `json:"exam_id" validate:"required"` // frontend exam identifier
	TotalQuestions  int            `json:"total_questions" validate:"required,gt=0"`
	AnsweredCount   int            `json:"answered_count" validate:"gte=0"`
	CorrectCount    int            `json:"correct_count" validate:"gte=0"`
	IncorrectCount  int            `json:"incorrect_count" validate:"gte=0"`
	UnansweredCount int            `json:"unanswered_count" validate:"gte=0"`
	Score           float64        `json:"score" validate:"gte=0,lte=100"`
	Answers         map[string]any `json:"answers"`
}

/* ===== Responses ===== */

type SubmitExamResponse struct {
	AttemptID         string `json:"attempt_id"`
	RemainingAttempts *int   `json:"remaining_attempts"`
}

type AttemptDTO struct {
	AttemptID       string         `json:"attempt_id"`
	ExamID          string         `json:"exam_id"`
	TotalQuestions  int            `json:"total_questions"`
	AnsweredCount   int            `json:"answered_count"`
	CorrectCount    int            `json:"correct_count"`
	IncorrectCount  int            `json:"incorrect_count"`
	UnansweredCount int            `json:"unanswered_count"`
	Score           float64        `json:"score"`
	Answers         map[string]any `json:"answers,omitempty"`
	SubmittedAt     time.Time      `json:"submitted_at"`
}

type PurchasedExamDTO struct {
	FrontendID        string    `json:"frontend_id"`
	Title             string    `json:"title"`
	OrderItemID       string    `json:"order_item_id"`
	PurchasedAt       time.Time `json:"purchased_at"`
	UsedAttempts      int64     `json:"used_attempts"`
	RemainingAttempts *int      `json:"remaining_attempts"`
}

func ToAttemptDTO(a model.ExamAttemptModel, withAnswers bool) AttemptDTO {
	out := AttemptDTO{
		AttemptID:       a.AttemptID.String(),
		ExamID:          a.AttemptExamID.String(),
		TotalQuestions:  a.AttemptTotalQuestions,
		AnsweredCount:   a.AttemptAnsweredCount,
		CorrectCount:    a.AttemptCorrectCount,
		IncorrectCount:  a.AttemptIncorrectCount,
		UnansweredCount: a.AttemptUnansweredCount,
		Score:           a.AttemptScore,
		SubmittedAt:     a.AttemptSubmittedAt,
	}
	if withAnswers {
		out.Answers = a.AttemptAnswers
	}
	return out
}

func ToPurchasedExamDTO(p service.PurchasedExam) PurchasedExamDTO {
	return PurchasedExamDTO{
		FrontendID:        examService.FrontendExamID(&p.Exam),
		Title:             p.Exam.ExamTitle,
		OrderItemID:       p.OrderItemID.String(),
		PurchasedAt:       p.PurchasedAt,
		UsedAttempts:      p.UsedAttempts,
		RemainingAttempts: p.RemainingAttempts,
	}
}
