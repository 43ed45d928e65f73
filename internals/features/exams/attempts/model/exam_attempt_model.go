package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExamAttemptModel rows are append-only; an attempt is never updated once
// written. attempt_order_item_id points at the purchase that granted access
// and is null for free or unlimited exams.
type ExamAttemptModel struct {
	AttemptID uuid.UUID `gorm:"column:attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attempt_id"`

	AttemptUserID uuid.UUID `gorm:"column:attempt_user_id;type:uuid;not null;index" json:"attempt_user_id"`
	AttemptExamID uuid.UUID `gorm:"column:attempt_exam_id;type:uuid;not null;index" json:"attempt_exam_id"`

	AttemptOrderItemID *uuid.UUID `gorm:"column:attempt_order_item_id;type:uuid;index" json:"attempt_order_item_id,omitempty"`

	AttemptTotalQuestions  int `gorm:"column:attempt_total_questions;not null" json:"attempt_total_questions"`
	AttemptAnsweredCount   int `gorm:"column:attempt_answered_count;not null" json:"attempt_answered_count"`
	AttemptCorrectCount    int `gorm:"column:attempt_correct_count;not null" json:"attempt_correct_count"`
	AttemptIncorrectCount  int `gorm:"column:attempt_incorrect_count;not null" json:"attempt_incorrect_count"`
	AttemptUnansweredCount int `gorm:"column:attempt_unanswered_count;not null" json:"attempt_unanswered_count"`

	AttemptScore float64 `gorm:"column:attempt_score;not null" json:"attempt_score"`

	// Raw answers: question number -> chosen option id.
	AttemptAnswers datatypes.JSONMap `gorm:"column:attempt_answers;type:jsonb" json:"attempt_answers"`

	AttemptSubmittedAt time.Time `gorm:"column:attempt_submitted_at;autoCreateTime" json:"attempt_submitted_at"`
}

func (ExamAttemptModel) TableName() string {
	return "exam_attempts"
}
