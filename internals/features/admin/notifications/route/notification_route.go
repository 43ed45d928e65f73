package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/admin/notifications/controller"
)

func NotificationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	admin.Get("/activity", ctrl.GetActivityFeed)

	grp := admin.Group("/notifications")
	grp.Get("/", ctrl.ListNotifications)
	grp.Post("/sync", ctrl.SyncNotifications)
	grp.Patch("/:id/read", ctrl.MarkRead)
}
