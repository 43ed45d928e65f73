package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barprep_backend/internals/configs"
	cartModel "barprep_backend/internals/features/shop/carts/model"
	orderModel "barprep_backend/internals/features/shop/orders/model"
	"barprep_backend/internals/features/shop/payments/dto"
	"barprep_backend/internals/features/shop/payments/model"
	"barprep_backend/internals/features/shop/payments/service"
	helper "barprep_backend/internals/helpers"
	authMiddleware "barprep_backend/internals/middlewares/auth"
)

var validatePayment = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// =======================
// Create payment intent (checkout)
// =======================
//
// Builds a PENDING order + payment pair from the caller's cart rows, then
// registers the charge with the gateway. The cart rows stay in place until
// the webhook confirms payment, so an abandoned checkout leaves the cart
// intact.
func (ctrl *PaymentController) CreateIntent(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}

	var req dto.CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	cartIDs := make([]uuid.UUID, 0, len(req.CartIDs))
	for _, raw := range req.CartIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cart id")
		}
		cartIDs = append(cartIDs, id)
	}

	var carts []cartModel.CartModel
	if err := ctrl.DB.Where("cart_id IN ? AND cart_user_id = ?", cartIDs, userID).
		Find(&carts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cart")
	}
	if len(carts) != len(cartIDs) {
		return helper.JsonError(c, fiber.StatusNotFound, "One or more cart items were not found")
	}

	var total int64
	for _, cart := range carts {
		total += cart.CartPrice
	}
	if total <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Order total must be positive")
	}

	order := orderModel.OrderModel{
		OrderUserID:            userID,
		OrderTotalAmount:       total,
		OrderStatus:            orderModel.OrderStatusPending,
		OrderBillingName:       req.Billing.Name,
		OrderBillingEmail:      req.Billing.Email,
		OrderBillingPhone:      req.Billing.Phone,
		OrderBillingAddress:    req.Billing.Address,
		OrderBillingCity:       req.Billing.City,
		OrderBillingPostalCode: req.Billing.PostalCode,
		OrderBillingCountry:    req.Billing.Country,
	}
	payment := model.PaymentModel{
		PaymentAmount:   total,
		PaymentCurrency: "gbp",
		PaymentStatus:   model.PaymentStatusPending,
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		items := make([]orderModel.OrderItemModel, 0, len(carts))
		for _, cart := range carts {
			items = append(items, orderModel.OrderItemModel{
				OrderItemOrderID: order.OrderID,
				OrderItemExamID:  cart.CartExamID,
				OrderItemPrice:   cart.CartPrice,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		payment.PaymentOrderID = order.OrderID
		return tx.Create(&payment).Error
	}); err != nil {
		log.Printf("[ERROR] checkout transaction failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create order")
	}

	intent, err := service.CreatePaymentIntent(
		total, payment.PaymentCurrency,
		order.OrderID.String(), payment.PaymentID.String(),
		req.Billing.Email,
	)
	if err != nil {
		log.Printf("[ERROR] payment intent creation failed for order %s: %v", order.OrderID, err)
		// Roll the pair forward to FAILED so the pending order does not
		// linger as purchasable.
		ctrl.DB.Model(&payment).Update("payment_status", model.PaymentStatusFailed)
		ctrl.DB.Model(&order).Update("order_status", orderModel.OrderStatusFailed)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway rejected the request")
	}

	if err := ctrl.DB.Model(&payment).Updates(map[string]any{
		"payment_intent_id":     intent.ID,
		"payment_client_secret": intent.ClientSecret,
	}).Error; err != nil {
		// The webhook can still reconcile via metadata, so log and carry on.
		log.Printf("[WARN] failed to persist intent id for payment %s: %v", payment.PaymentID, err)
	}

	return helper.JsonCreated(c, "Checkout started", dto.CreateIntentResponse{
		ClientSecret: intent.ClientSecret,
		OrderID:      order.OrderID.String(),
		PaymentID:    payment.PaymentID.String(),
		Amount:       total,
		Currency:     payment.PaymentCurrency,
	})
}

// =======================
// Stripe webhook
// =======================
//
// Signature failures return 400 so the gateway retries with a fresh
// signature; anything else returns 500 so the delivery is retried whole.
func (ctrl *PaymentController) StripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	sigHeader := c.Get("Stripe-Signature")

	if err := service.HandleStripeWebhook(ctrl.DB, payload, sigHeader, configs.StripeWebhookSecret); err != nil {
		if service.IsSignatureError(err) {
			log.Printf("[WARN] webhook rejected: %v", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook signature")
		}
		log.Printf("[ERROR] webhook processing failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Webhook processing failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}

// =======================
// Payment lookup (signed-in user)
// =======================
func (ctrl *PaymentController) GetMyPayment(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authMiddleware.UserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not signed in")
	}
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.
		Joins("JOIN orders ON orders.order_id = payments.payment_order_id").
		Where("payments.payment_id = ? AND orders.order_user_id = ?", paymentID, userID).
		First(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}
	return helper.JsonOK(c, "", payment)
}
