package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptModel "barprep_backend/internals/features/exams/attempts/model"
	examModel "barprep_backend/internals/features/exams/exams/model"
	orderModel "barprep_backend/internals/features/shop/orders/model"
	paymentModel "barprep_backend/internals/features/shop/payments/model"
)

var (
	ErrNotPurchased   = errors.New("exam not purchased")
	ErrQuotaExhausted = errors.New("attempt quota exhausted")
)

// PurchasedExam is one exam a user holds access to, with attempt usage
// scoped to the order item of the MOST RECENT completed purchase. Older
// purchases of the same exam neither carry attempts over nor count against
// the new quota.
type PurchasedExam struct {
	Exam              examModel.ExamModel `json:"exam"`
	OrderItemID       uuid.UUID           `json:"order_item_id"`
	PurchasedAt       time.Time           `json:"purchased_at"`
	UsedAttempts      int64               `json:"used_attempts"`
	RemainingAttempts *int                `json:"remaining_attempts"` // nil = unlimited
}

// RemainingAttempts computes max(0, N - used), or nil when the exam places
// no cap on attempts.
func RemainingAttempts(attemptCount *int, used int64) *int {
	if attemptCount == nil || *attemptCount <= 0 {
		return nil
	}
	remaining := *attemptCount - int(used)
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// paidOrderItems returns the user's order items backed by a COMPLETED order
// with a SUCCEEDED payment, newest purchase first.
func paidOrderItems(db *gorm.DB, userID uuid.UUID) ([]orderModel.OrderItemModel, error) {
	var items []orderModel.OrderItemModel
	err := db.Table("order_items").
		Select("order_items.*").
		Joins("JOIN orders ON orders.order_id = order_items.order_item_order_id").
		Joins("JOIN payments ON payments.payment_order_id = orders.order_id").
		Where("orders.order_user_id = ?", userID).
		Where("orders.order_status = ?", orderModel.OrderStatusCompleted).
		Where("payments.payment_status = ?", paymentModel.PaymentStatusSucceeded).
		Order("order_items.created_at DESC").
		Find(&items).Error
	return items, err
}

// ListPurchasedExams resolves every exam the user has bought, keeping only
// the most recent order item per exam, with used/remaining attempt counts.
func ListPurchasedExams(db *gorm.DB, userID uuid.UUID) ([]PurchasedExam, error) {
	items, err := paidOrderItems(db, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(items))
	out := make([]PurchasedExam, 0, len(items))

	for _, item := range items {
		if seen[item.OrderItemExamID] {
			continue
		}
		seen[item.OrderItemExamID] = true

		var exam examModel.ExamModel
		if err := db.First(&exam, "exam_id = ?", item.OrderItemExamID).Error; err != nil {
			return nil, err
		}

		used, err := countAttemptsForOrderItem(db, item.OrderItemID)
		if err != nil {
			return nil, err
		}

		out = append(out, PurchasedExam{
			Exam:              exam,
			OrderItemID:       item.OrderItemID,
			PurchasedAt:       item.CreatedAt,
			UsedAttempts:      used,
			RemainingAttempts: RemainingAttempts(exam.ExamAttemptCount, used),
		})
	}
	return out, nil
}

func countAttemptsForOrderItem(db *gorm.DB, orderItemID uuid.UUID) (int64, error) {
	var used int64
	err := db.Model(&attemptModel.ExamAttemptModel{}).
		Where("attempt_order_item_id = ?", orderItemID).
		Count(&used).Error
	return used, err
}

// resolveLatestOrderItem picks the order item of the most recent completed
// purchase of this exam, or ErrNotPurchased.
func resolveLatestOrderItem(db *gorm.DB, userID, examID uuid.UUID) (*orderModel.OrderItemModel, error) {
	var item orderModel.OrderItemModel
	err := db.Table("order_items").
		Select("order_items.*").
		Joins("JOIN orders ON orders.order_id = order_items.order_item_order_id").
		Joins("JOIN payments ON payments.payment_order_id = orders.order_id").
		Where("orders.order_user_id = ?", userID).
		Where("order_items.order_item_exam_id = ?", examID).
		Where("orders.order_status = ?", orderModel.OrderStatusCompleted).
		Where("payments.payment_status = ?", paymentModel.PaymentStatusSucceeded).
		Order("order_items.created_at DESC").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotPurchased
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AccessDecision is the pre-check result used before rendering an exam.
type AccessDecision struct {
	Allowed           bool   `json:"allowed"`
	Reason            string `json:"reason,omitempty"`
	UsedAttempts      int64  `json:"used_attempts"`
	RemainingAttempts *int   `json:"remaining_attempts"`
}

// CheckAccess grants access iff the exam is free, the caller is an admin,
// or the exam is purchased and (unlimited OR remaining > 0).
func CheckAccess(db *gorm.DB, userID uuid.UUID, exam *examModel.ExamModel, isAdmin bool) (AccessDecision, error) {
	if isAdmin {
		return AccessDecision{Allowed: true}, nil
	}
	if !exam.IsPaid() {
		return AccessDecision{Allowed: true}, nil
	}

	item, err := resolveLatestOrderItem(db, userID, exam.ExamID)
	if errors.Is(err, ErrNotPurchased) {
		return AccessDecision{Allowed: false, Reason: "not purchased"}, nil
	}
	if err != nil {
		return AccessDecision{}, err
	}

	used, err := countAttemptsForOrderItem(db, item.OrderItemID)
	if err != nil {
		return AccessDecision{}, err
	}

	remaining := RemainingAttempts(exam.ExamAttemptCount, used)
	if remaining != nil && *remaining <= 0 {
		return AccessDecision{
			Allowed:           false,
			Reason:            "attempt quota exhausted",
			UsedAttempts:      used,
			RemainingAttempts: remaining,
		}, nil
	}

	return AccessDecision{
		Allowed:           true,
		UsedAttempts:      used,
		RemainingAttempts: remaining,
	}, nil
}
