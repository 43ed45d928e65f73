package service

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	notifModel "barprep_backend/internals/features/admin/notifications/model"
	examModel "barprep_backend/internals/features/exams/exams/model"
	cartModel "barprep_backend/internals/features/shop/carts/model"
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
		&cartModel.CartModel{},
		&notifModel.NotificationModel{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedCheckout creates the rows a create-intent call would leave behind: a
// buyer, a PENDING order with one item, and a PENDING payment.
func seedCheckout(t *testing.T, db *gorm.DB, intentID *string) (userModel.UserModel, orderModel.OrderModel, paymentModel.PaymentModel) {
	t.Helper()

	suffix := time.Now().UnixNano()
	user := userModel.UserModel{
		UserName:  fmt.Sprintf("itest_buyer_%d", suffix),
		UserEmail: fmt.Sprintf("itest_buyer_%d@example.test", suffix),
		UserRole:  "USER",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	set := examModel.ExamSetA
	exam := examModel.ExamModel{
		ExamType:        examModel.ExamTypeBarrister,
		ExamPricingType: examModel.PricingTypePaid,
		ExamSet:         &set,
		ExamTitle:       fmt.Sprintf("ITEST Webhook Exam %d", suffix),
		ExamPrice:       4900,
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("seed exam: %v", err)
	}

	order := orderModel.OrderModel{
		OrderUserID:       user.UserID,
		OrderTotalAmount:  exam.ExamPrice,
		OrderStatus:       orderModel.OrderStatusPending,
		OrderBillingEmail: user.UserEmail,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	item := orderModel.OrderItemModel{
		OrderItemOrderID: order.OrderID,
		OrderItemExamID:  exam.ExamID,
		OrderItemPrice:   exam.ExamPrice,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}

	payment := paymentModel.PaymentModel{
		PaymentOrderID:  order.OrderID,
		PaymentAmount:   exam.ExamPrice,
		PaymentCurrency: "gbp",
		PaymentStatus:   paymentModel.PaymentStatusPending,
		PaymentIntentID: intentID,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	cart := cartModel.CartModel{
		CartUserID: user.UserID,
		CartExamID: exam.ExamID,
		CartPrice:  exam.ExamPrice,
	}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	return user, order, payment
}

// intentEvent builds the decoded event applyPaymentOutcome receives once the
// signature layer has accepted the delivery.
func intentEvent(t *testing.T, intentID string, metadata map[string]string) stripe.Event {
	t.Helper()

	raw, err := json.Marshal(map[string]any{
		"id":       intentID,
		"object":   "payment_intent",
		"metadata": metadata,
	})
	if err != nil {
		t.Fatalf("marshal intent: %v", err)
	}
	return stripe.Event{Data: &stripe.EventData{Raw: raw}}
}

func cartCount(t *testing.T, db *gorm.DB, userID uuid.UUID) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&cartModel.CartModel{}).
		Where("cart_user_id = ?", userID).Count(&n).Error; err != nil {
		t.Fatalf("count carts: %v", err)
	}
	return n
}

func TestWebhookSucceeded_DBIntegration(t *testing.T) {
	db := openIntegrationDB(t)

	intentID := fmt.Sprintf("pi_itest_%d", time.Now().UnixNano())
	user, order, payment := seedCheckout(t, db, &intentID)

	event := intentEvent(t, intentID, nil)
	if err := applyPaymentOutcome(db, event, true); err != nil {
		t.Fatalf("apply succeeded event: %v", err)
	}

	var gotPayment paymentModel.PaymentModel
	if err := db.First(&gotPayment, "payment_id = ?", payment.PaymentID).Error; err != nil {
		t.Fatalf("reload payment: %v", err)
	}
	if gotPayment.PaymentStatus != paymentModel.PaymentStatusSucceeded {
		t.Errorf("payment status = %s, want SUCCEEDED", gotPayment.PaymentStatus)
	}
	if gotPayment.PaymentPaidAt == nil {
		t.Error("payment_paid_at not set")
	}

	var gotOrder orderModel.OrderModel
	if err := db.First(&gotOrder, "order_id = ?", order.OrderID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if gotOrder.OrderStatus != orderModel.OrderStatusCompleted {
		t.Errorf("order status = %s, want COMPLETED", gotOrder.OrderStatus)
	}

	if n := cartCount(t, db, user.UserID); n != 0 {
		t.Errorf("buyer still has %d cart rows, want 0", n)
	}

	// Both notifications land under their activity ids.
	for _, activityID := range []string{
		"order-" + order.OrderID.String(),
		"payment-" + payment.PaymentID.String(),
	} {
		var notif notifModel.NotificationModel
		if err := db.First(&notif, "notification_activity_id = ?", activityID).Error; err != nil {
			t.Errorf("notification %s missing: %v", activityID, err)
		}
	}

	// Redelivery of a terminal event must change nothing.
	firstPaidAt := *gotPayment.PaymentPaidAt
	if err := applyPaymentOutcome(db, event, true); err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	if err := db.First(&gotPayment, "payment_id = ?", payment.PaymentID).Error; err != nil {
		t.Fatalf("reload payment after redelivery: %v", err)
	}
	if gotPayment.PaymentPaidAt == nil || !gotPayment.PaymentPaidAt.Equal(firstPaidAt) {
		t.Errorf("redelivery moved payment_paid_at from %v to %v", firstPaidAt, gotPayment.PaymentPaidAt)
	}
}

func TestWebhookMetadataFallback_DBIntegration(t *testing.T) {
	db := openIntegrationDB(t)

	// Intent id never persisted: the event must resolve through the order_id
	// metadata and backfill the intent id.
	_, order, payment := seedCheckout(t, db, nil)

	intentID := fmt.Sprintf("pi_itest_fb_%d", time.Now().UnixNano())
	event := intentEvent(t, intentID, map[string]string{"order_id": order.OrderID.String()})
	if err := applyPaymentOutcome(db, event, true); err != nil {
		t.Fatalf("apply event: %v", err)
	}

	var gotPayment paymentModel.PaymentModel
	if err := db.First(&gotPayment, "payment_id = ?", payment.PaymentID).Error; err != nil {
		t.Fatalf("reload payment: %v", err)
	}
	if gotPayment.PaymentStatus != paymentModel.PaymentStatusSucceeded {
		t.Errorf("payment status = %s, want SUCCEEDED", gotPayment.PaymentStatus)
	}
	if gotPayment.PaymentIntentID == nil || *gotPayment.PaymentIntentID != intentID {
		t.Errorf("intent id backfill = %v, want %s", gotPayment.PaymentIntentID, intentID)
	}
}

func TestWebhookFailed_DBIntegration(t *testing.T) {
	db := openIntegrationDB(t)

	intentID := fmt.Sprintf("pi_itest_fail_%d", time.Now().UnixNano())
	user, order, payment := seedCheckout(t, db, &intentID)

	event := intentEvent(t, intentID, nil)
	if err := applyPaymentOutcome(db, event, false); err != nil {
		t.Fatalf("apply failed event: %v", err)
	}

	var gotPayment paymentModel.PaymentModel
	if err := db.First(&gotPayment, "payment_id = ?", payment.PaymentID).Error; err != nil {
		t.Fatalf("reload payment: %v", err)
	}
	if gotPayment.PaymentStatus != paymentModel.PaymentStatusFailed {
		t.Errorf("payment status = %s, want FAILED", gotPayment.PaymentStatus)
	}
	if gotPayment.PaymentFailedAt == nil {
		t.Error("payment_failed_at not set")
	}

	var gotOrder orderModel.OrderModel
	if err := db.First(&gotOrder, "order_id = ?", order.OrderID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if gotOrder.OrderStatus != orderModel.OrderStatusFailed {
		t.Errorf("order status = %s, want FAILED", gotOrder.OrderStatus)
	}

	// A failed payment leaves the cart alone.
	if n := cartCount(t, db, user.UserID); n != 1 {
		t.Errorf("buyer has %d cart rows, want 1", n)
	}
}

func TestWebhookUnresolved_DBIntegration(t *testing.T) {
	db := openIntegrationDB(t)

	intentID := fmt.Sprintf("pi_itest_pending_%d", time.Now().UnixNano())
	_, order, payment := seedCheckout(t, db, &intentID)

	// Unknown intent, no metadata: acknowledged without touching anything.
	event := intentEvent(t, "pi_unknown_intent", nil)
	if err := applyPaymentOutcome(db, event, true); err != nil {
		t.Fatalf("apply unresolved event: %v", err)
	}

	var gotPayment paymentModel.PaymentModel
	if err := db.First(&gotPayment, "payment_id = ?", payment.PaymentID).Error; err != nil {
		t.Fatalf("reload payment: %v", err)
	}
	if gotPayment.PaymentStatus != paymentModel.PaymentStatusPending {
		t.Errorf("payment status = %s, want PENDING", gotPayment.PaymentStatus)
	}

	var gotOrder orderModel.OrderModel
	if err := db.First(&gotOrder, "order_id = ?", order.OrderID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if gotOrder.OrderStatus != orderModel.OrderStatusPending {
		t.Errorf("order status = %s, want PENDING", gotOrder.OrderStatus)
	}
}
