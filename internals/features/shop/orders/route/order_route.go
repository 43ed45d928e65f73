package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/shop/orders/controller"
)

func OrderUserRoutes(session fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOrderController(db)

	grp := session.Group("/orders")
	grp.Get("/", ctrl.ListMyOrders)
	grp.Get("/:id", ctrl.GetMyOrder)
}

func OrderAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOrderController(db)

	grp := admin.Group("/orders")
	grp.Get("/", ctrl.ListOrders)
	grp.Get("/:id", ctrl.GetOrder)
	grp.Patch("/:id/cancel", ctrl.CancelOrder)
}
