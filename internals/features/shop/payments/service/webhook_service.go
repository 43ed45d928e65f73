package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"

	notificationService "barprep_backend/internals/features/admin/notifications/service"
	cartModel "barprep_backend/internals/features/shop/carts/model"
	orderModel "barprep_backend/internals/features/shop/orders/model"
	paymentModel "barprep_backend/internals/features/shop/payments/model"
	userModel "barprep_backend/internals/features/users/user/model"
)

var (
	// ErrWebhookSecretMissing: no signing secret configured. Fail closed.
	ErrWebhookSecretMissing = errors.New("webhook signing secret not configured")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
)

// IsSignatureError reports whether err should map to a 400 response.
func IsSignatureError(err error) bool {
	return errors.Is(err, ErrWebhookSecretMissing) || errors.Is(err, ErrInvalidSignature)
}

// HandleStripeWebhook verifies and applies one gateway event. Delivery is
// at-least-once: re-processing an event whose payment is already in the
// target terminal state is a no-op.
func HandleStripeWebhook(db *gorm.DB, payload []byte, sigHeader, webhookSecret string) error {
	if strings.TrimSpace(webhookSecret) == "" {
		return ErrWebhookSecretMissing
	}

	event, err := webhook.ConstructEvent(payload, sigHeader, webhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	switch string(event.Type) {
	case "payment_intent.succeeded":
		return applyPaymentOutcome(db, event, true)
	case "payment_intent.payment_failed":
		return applyPaymentOutcome(db, event, false)
	default:
		log.Printf("[INFO] webhook: ignoring event type %s", event.Type)
		return nil
	}
}

// applyPaymentOutcome transitions Payment and Order to their terminal
// states for one succeeded/failed event.
func applyPaymentOutcome(db *gorm.DB, event stripe.Event, succeeded bool) error {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return fmt.Errorf("decode payment intent: %w", err)
	}

	payment, err := resolvePayment(db, intent)
	if err != nil {
		return err
	}
	if payment == nil {
		// The gateway will retry on error; a payment we cannot resolve most
		// likely belongs to an order no longer in this system, so report
		// success and move on.
		log.Printf("[WARN] webhook: no payment for intent %s, skipping", intent.ID)
		return nil
	}

	targetStatus := paymentModel.PaymentStatusSucceeded
	if !succeeded {
		targetStatus = paymentModel.PaymentStatusFailed
	}
	if payment.PaymentStatus == targetStatus {
		log.Printf("[INFO] webhook: payment %s already %s, redelivery ignored", payment.PaymentID, targetStatus)
		return nil
	}

	var order orderModel.OrderModel
	if err := db.First(&order, "order_id = ?", payment.PaymentOrderID).Error; err != nil {
		return fmt.Errorf("load order %s: %w", payment.PaymentOrderID, err)
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		paymentUpdates := map[string]any{
			"payment_status": targetStatus,
		}
		if succeeded {
			paymentUpdates["payment_paid_at"] = now
		} else {
			paymentUpdates["payment_failed_at"] = now
		}
		if payment.PaymentIntentID == nil && intent.ID != "" {
			// Backfill for events that beat the synchronous creation path.
			paymentUpdates["payment_intent_id"] = intent.ID
		}
		if err := tx.Model(&paymentModel.PaymentModel{}).
			Where("payment_id = ?", payment.PaymentID).
			Updates(paymentUpdates).Error; err != nil {
			return err
		}

		orderStatus := orderModel.OrderStatusCompleted
		if !succeeded {
			orderStatus = orderModel.OrderStatusFailed
		}
		if err := tx.Model(&orderModel.OrderModel{}).
			Where("order_id = ?", order.OrderID).
			Update("order_status", orderStatus).Error; err != nil {
			return err
		}

		if succeeded {
			// A successful purchase clears the buyer's entire pending cart,
			// not just the purchased items.
			if err := tx.Where("cart_user_id = ?", order.OrderUserID).
				Delete(&cartModel.CartModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	emitPaymentNotifications(db, &order, payment, succeeded)
	return nil
}

// resolvePayment locates the payment by intent id, falling back to the
// order_id in the event metadata; returns nil (not an error) when neither
// path matches.
func resolvePayment(db *gorm.DB, intent stripe.PaymentIntent) (*paymentModel.PaymentModel, error) {
	var payment paymentModel.PaymentModel

	err := db.First(&payment, "payment_intent_id = ?", intent.ID).Error
	if err == nil {
		return &payment, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	orderID, ok := intent.Metadata["order_id"]
	if !ok || orderID == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(orderID)
	if err != nil {
		log.Printf("[WARN] webhook: bad order_id metadata %q", orderID)
		return nil, nil
	}

	err = db.First(&payment, "payment_order_id = ?", parsed).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func emitPaymentNotifications(db *gorm.DB, order *orderModel.OrderModel, payment *paymentModel.PaymentModel, succeeded bool) {
	var buyer userModel.UserModel
	if err := db.First(&buyer, "user_id = ?", order.OrderUserID).Error; err != nil {
		log.Printf("[WARN] webhook: buyer %s not loaded: %v", order.OrderUserID, err)
	}

	orderAction, paymentAction := "completed", "succeeded"
	if !succeeded {
		orderAction, paymentAction = "failed", "failed"
	}

	now := time.Now()
	notificationService.RecordActivity(db, notificationService.Activity{
		ID:          notificationService.ActivityID("order", order.OrderID),
		Type:        "order",
		Action:      orderAction,
		Description: fmt.Sprintf("Order %s is %s", order.OrderID.String()[:8], orderAction),
		User:        buyer.UserName,
		Email:       buyer.UserEmail,
		Metadata: map[string]any{
			"order_id":     order.OrderID.String(),
			"total_amount": order.OrderTotalAmount,
		},
		Time: now,
	})
	notificationService.RecordActivity(db, notificationService.Activity{
		ID:          notificationService.ActivityID("payment", payment.PaymentID),
		Type:        "payment",
		Action:      paymentAction,
		Description: fmt.Sprintf("Payment of %d %s %s", payment.PaymentAmount, strings.ToUpper(payment.PaymentCurrency), paymentAction),
		User:        buyer.UserName,
		Email:       buyer.UserEmail,
		Metadata: map[string]any{
			"payment_id": payment.PaymentID.String(),
			"order_id":   order.OrderID.String(),
		},
		Time: now,
	})
}
