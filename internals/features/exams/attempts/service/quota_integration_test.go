package service

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attemptModel "barprep_backend/internals/features/exams/attempts/model"
	examModel "barprep_backend/internals/features/exams/exams/model"
	orderModel "barprep_backend/internals/features/shop/orders/model"
	paymentModel "barprep_backend/internals/features/shop/payments/model"
	userModel "barprep_backend/internals/features/users/user/model"
)

func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("BARPREP_INTEGRATION") != "1" {
		t.Skip("set BARPREP_INTEGRATION=1 to run integration tests")
	}

	dsn := os.Getenv("BARPREP_TEST_DSN")
	if strings.TrimSpace(dsn) == "" {
		dsn = "host=localhost user=barprep password=barprep_dev_password dbname=barprep_test port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&examModel.ExamModel{},
		&orderModel.OrderModel{},
		&orderModel.OrderItemModel{},
		&paymentModel.PaymentModel{},
		&attemptModel.ExamAttemptModel{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedPurchase creates a COMPLETED order with a SUCCEEDED payment holding one
// item for the given exam, and returns the order item id.
func seedPurchase(t *testing.T, db *gorm.DB, userID, examID uuid.UUID, price int64) uuid.UUID {
	t.Helper()

	order := orderModel.OrderModel{
		OrderUserID:      userID,
		OrderTotalAmount: price,
		OrderStatus:      orderModel.OrderStatusCompleted,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	item := orderModel.OrderItemModel{
		OrderItemOrderID: order.OrderID,
		OrderItemExamID:  examID,
		OrderItemPrice:   price,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}

	payment := paymentModel.PaymentModel{
		PaymentOrderID:  order.OrderID,
		PaymentAmount:   price,
		PaymentCurrency: "gbp",
		PaymentStatus:   paymentModel.PaymentStatusSucceeded,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return item.OrderItemID
}

func submitOnce(t *testing.T, db *gorm.DB, user userModel.UserModel, exam *examModel.ExamModel) (*SubmitResult, error) {
	t.Helper()
	return SubmitAttempt(db, user.UserID, user.UserName, user.UserEmail, exam, SubmitInput{
		TotalQuestions:  10,
		AnsweredCount:   10,
		CorrectCount:    7,
		IncorrectCount:  3,
		UnansweredCount: 0,
		Score:           70,
		Answers:         map[string]any{"1": "opt-a"},
	})
}

func TestAttemptQuota_DBIntegration(t *testing.T) {
	db := openIntegrationDB(t)

	suffix := time.Now().UnixNano()
	user := userModel.UserModel{
		UserName:  fmt.Sprintf("itest_candidate_%d", suffix),
		UserEmail: fmt.Sprintf("itest_candidate_%d@example.test", suffix),
		UserRole:  "USER",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	attemptCount := 2
	set := examModel.ExamSetA
	exam := examModel.ExamModel{
		ExamType:         examModel.ExamTypeBarrister,
		ExamPricingType:  examModel.PricingTypePaid,
		ExamSet:          &set,
		ExamTitle:        fmt.Sprintf("ITEST Exam %d", suffix),
		ExamPrice:        4900,
		ExamAttemptCount: &attemptCount,
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("seed exam: %v", err)
	}

	// No purchase yet: submission must be refused.
	if _, err := submitOnce(t, db, user, &exam); !errors.Is(err, ErrNotPurchased) {
		t.Fatalf("submit without purchase = %v, want ErrNotPurchased", err)
	}

	firstItem := seedPurchase(t, db, user.UserID, exam.ExamID, exam.ExamPrice)

	// The quota admits exactly attemptCount submissions.
	for i := 1; i <= attemptCount; i++ {
		res, err := submitOnce(t, db, user, &exam)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if res.Attempt.AttemptOrderItemID == nil || *res.Attempt.AttemptOrderItemID != firstItem {
			t.Fatalf("submit %d bound to %v, want item %s", i, res.Attempt.AttemptOrderItemID, firstItem)
		}
		wantRemaining := attemptCount - i
		if res.RemainingAttempts == nil || *res.RemainingAttempts != wantRemaining {
			t.Fatalf("submit %d remaining = %v, want %d", i, res.RemainingAttempts, wantRemaining)
		}
	}

	if _, err := submitOnce(t, db, user, &exam); !errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("submit past quota = %v, want ErrQuotaExhausted", err)
	}

	// A later purchase opens a fresh quota scoped to the new order item;
	// the exhausted first item does not count against it.
	time.Sleep(10 * time.Millisecond) // created_at must order the purchases
	secondItem := seedPurchase(t, db, user.UserID, exam.ExamID, exam.ExamPrice)

	res, err := submitOnce(t, db, user, &exam)
	if err != nil {
		t.Fatalf("submit after repurchase: %v", err)
	}
	if res.Attempt.AttemptOrderItemID == nil || *res.Attempt.AttemptOrderItemID != secondItem {
		t.Fatalf("repurchase submit bound to %v, want item %s", res.Attempt.AttemptOrderItemID, secondItem)
	}
	if res.RemainingAttempts == nil || *res.RemainingAttempts != attemptCount-1 {
		t.Fatalf("repurchase remaining = %v, want %d", res.RemainingAttempts, attemptCount-1)
	}
}

func TestListPurchasedExams_DBIntegration(t *testing.T) {
	db := openIntegrationDB(t)

	suffix := time.Now().UnixNano()
	user := userModel.UserModel{
		UserName:  fmt.Sprintf("itest_buyer_%d", suffix),
		UserEmail: fmt.Sprintf("itest_buyer_%d@example.test", suffix),
		UserRole:  "USER",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	attemptCount := 3
	set := examModel.ExamSetB
	exam := examModel.ExamModel{
		ExamType:         examModel.ExamTypeSolicitor,
		ExamPricingType:  examModel.PricingTypePaid,
		ExamSet:          &set,
		ExamTitle:        fmt.Sprintf("ITEST Purchased %d", suffix),
		ExamPrice:        5900,
		ExamAttemptCount: &attemptCount,
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("seed exam: %v", err)
	}

	seedPurchase(t, db, user.UserID, exam.ExamID, exam.ExamPrice)
	time.Sleep(10 * time.Millisecond)
	latest := seedPurchase(t, db, user.UserID, exam.ExamID, exam.ExamPrice)

	purchased, err := ListPurchasedExams(db, user.UserID)
	if err != nil {
		t.Fatalf("ListPurchasedExams: %v", err)
	}

	var found *PurchasedExam
	for i := range purchased {
		if purchased[i].Exam.ExamID == exam.ExamID {
			found = &purchased[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("exam %s missing from purchases", exam.ExamID)
	}
	if found.OrderItemID != latest {
		t.Errorf("purchase surfaced item %s, want the most recent %s", found.OrderItemID, latest)
	}
	if found.RemainingAttempts == nil || *found.RemainingAttempts != attemptCount {
		t.Errorf("remaining = %v, want %d", found.RemainingAttempts, attemptCount)
	}
}
