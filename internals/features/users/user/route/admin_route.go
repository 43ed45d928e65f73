package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	grp := admin.Group("/users")
	grp.Get("/", ctrl.ListUsers)
	grp.Patch("/:id/role", ctrl.UpdateUserRole)
	grp.Delete("/:id", ctrl.DeleteUser)
}
