package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notificationService "barprep_backend/internals/features/admin/notifications/service"
	attemptModel "barprep_backend/internals/features/exams/attempts/model"
	examModel "barprep_backend/internals/features/exams/exams/model"
)

// SubmitInput carries the full answer set with client-precomputed totals.
type SubmitInput struct {
	TotalQuestions  int
	AnsweredCount   int
	CorrectCount    int
	IncorrectCount  int
	UnansweredCount int
	Score           float64
	Answers         map[string]any // question number -> chosen option id
}

// ValidateTotals rejects submissions whose counters do not add up.
func ValidateTotals(in SubmitInput) error {
	if in.AnsweredCount+in.UnansweredCount != in.TotalQuestions {
		return fmt.Errorf("answered (%d) + unanswered (%d) must equal total (%d)",
			in.AnsweredCount, in.UnansweredCount, in.TotalQuestions)
	}
	if in.CorrectCount+in.IncorrectCount != in.AnsweredCount {
		return fmt.Errorf("correct (%d) + incorrect (%d) must equal answered (%d)",
			in.CorrectCount, in.IncorrectCount, in.AnsweredCount)
	}
	if in.Score < 0 || in.Score > 100 {
		return fmt.Errorf("score %.2f out of range", in.Score)
	}
	return nil
}

// SubmitResult is the persisted attempt plus the attempts still left on the
// purchase that granted access; RemainingAttempts is nil for free or
// unlimited exams.
type SubmitResult struct {
	Attempt           *attemptModel.ExamAttemptModel
	RemainingAttempts *int
}

// SubmitAttempt gates a PAID, quota-limited exam behind the most recent
// completed purchase, counts prior attempts against that order item, and
// appends one immutable attempt row.
//
// The order-item resolution and the quota count are two separate queries
// without a spanning transaction; a purchase racing a submission can pick a
// different order item than intended. Known gap.
func SubmitAttempt(db *gorm.DB, userID uuid.UUID, userName, userEmail string, exam *examModel.ExamModel, in SubmitInput) (*SubmitResult, error) {
	var orderItemID *uuid.UUID
	var remaining *int

	// The purchase gate only applies to paid exams with a positive attempt
	// cap; free and unlimited exams store a null order item reference.
	if exam.HasQuota() {
		item, err := resolveLatestOrderItem(db, userID, exam.ExamID)
		if err != nil {
			return nil, err // ErrNotPurchased or a DB error
		}
		orderItemID = &item.OrderItemID

		used, err := countAttemptsForOrderItem(db, item.OrderItemID)
		if err != nil {
			return nil, err
		}

		if used >= int64(*exam.ExamAttemptCount) {
			return nil, ErrQuotaExhausted
		}

		// One more attempt is about to be recorded.
		remaining = RemainingAttempts(exam.ExamAttemptCount, used+1)
	}

	attempt := attemptModel.ExamAttemptModel{
		AttemptUserID:          userID,
		AttemptExamID:          exam.ExamID,
		AttemptOrderItemID:     orderItemID,
		AttemptTotalQuestions:  in.TotalQuestions,
		AttemptAnsweredCount:   in.AnsweredCount,
		AttemptCorrectCount:    in.CorrectCount,
		AttemptIncorrectCount:  in.IncorrectCount,
		AttemptUnansweredCount: in.UnansweredCount,
		AttemptScore:           in.Score,
		AttemptAnswers:         datatypes.JSONMap(in.Answers),
	}
	if err := db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	notificationService.RecordActivity(db, notificationService.Activity{
		ID:          notificationService.ActivityID("attempt", attempt.AttemptID),
		Type:        "attempt",
		Action:      "submitted",
		Description: fmt.Sprintf("%s scored %.1f%% on %s", userName, in.Score, exam.ExamTitle),
		User:        userName,
		Email:       userEmail,
		Metadata: map[string]any{
			"attempt_id": attempt.AttemptID.String(),
			"exam_id":    exam.ExamID.String(),
			"score":      in.Score,
		},
		Time: attempt.AttemptSubmittedAt,
	})

	return &SubmitResult{Attempt: &attempt, RemainingAttempts: remaining}, nil
}

// IsForbidden reports whether err maps to a 403 in the submit flow.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrNotPurchased) || errors.Is(err, ErrQuotaExhausted)
}
