package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/shop/carts/controller"
)

func CartUserRoutes(session fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCartController(db)

	grp := session.Group("/cart")
	grp.Get("/", ctrl.ListCart)
	grp.Post("/", ctrl.AddToCart)
	grp.Delete("/:id", ctrl.RemoveFromCart)
	grp.Delete("/", ctrl.ClearCart)
}
