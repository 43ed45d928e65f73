package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/shop/payments/controller"
)

// PaymentPublicRoutes mounts the gateway webhook. It must stay outside any
// auth middleware: the gateway authenticates with its signature header.
func PaymentPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	public.Post("/payments/webhook", ctrl.StripeWebhook)
}

func PaymentUserRoutes(session fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	grp := session.Group("/payments")
	grp.Post("/create-intent", ctrl.CreateIntent)
	grp.Get("/:id", ctrl.GetMyPayment)
}
