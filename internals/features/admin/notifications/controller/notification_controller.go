package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barprep_backend/internals/features/admin/notifications/dto"
	"barprep_backend/internals/features/admin/notifications/model"
	"barprep_backend/internals/features/admin/notifications/service"
	helper "barprep_backend/internals/helpers"
	authMiddleware "barprep_backend/internals/middlewares/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// =======================
// Live activity feed
// =======================
//
// Aggregates every source table on each call and pages the merged feed in
// memory. Fine at back-office scale; revisit if the tables grow large.
func (ctrl *NotificationController) GetActivityFeed(c *fiber.Ctx) error {
	activities, err := service.CollectActivities(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] activity aggregation failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate activity")
	}
	service.SortActivities(activities)

	paging := helper.ResolvePaging(c, 20, 100)
	page := service.PageActivities(activities, paging.Page, paging.PerPage)

	return helper.JsonList(c, "", page,
		helper.BuildPaginationFromPage(int64(len(activities)), paging.Page, paging.PerPage))
}

// =======================
// Sync feed into notifications
// =======================
func (ctrl *NotificationController) SyncNotifications(c *fiber.Ctx) error {
	synced, err := service.SyncNotifications(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] notification sync failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sync notifications")
	}
	return helper.JsonOK(c, "Notifications synced", fiber.Map{"synced": synced})
}

// =======================
// Persisted notifications
// =======================
func (ctrl *NotificationController) ListNotifications(c *fiber.Ctx) error {
	adminID := authMiddleware.UserID(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NotificationModel{})
	if t := c.Query("type"); t != "" {
		q = q.Where("notification_type = ?", t)
	}
	if c.Query("unread") == "true" {
		q = q.Where("NOT (? = ANY(notification_read_by)) OR notification_read_by IS NULL", adminID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var rows []model.NotificationModel
	if err := q.Order("notification_activity_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	resp := make([]dto.NotificationDTO, 0, len(rows))
	for _, n := range rows {
		resp = append(resp, dto.ToNotificationDTO(n, adminID))
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// MarkRead appends the calling admin to a notification's read_by list.
// Idempotent: marking twice is a no-op.
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	adminID := authMiddleware.UserID(c)
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	var notif model.NotificationModel
	if err := ctrl.DB.Where("notification_id = ?", notifID).First(&notif).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification")
	}

	for _, id := range notif.NotificationReadBy {
		if id == adminID {
			return helper.JsonOK(c, "Already read", dto.ToNotificationDTO(notif, adminID))
		}
	}

	notif.NotificationReadBy = append(notif.NotificationReadBy, adminID)
	if err := ctrl.DB.Model(&notif).
		Update("notification_read_by", notif.NotificationReadBy).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}

	return helper.JsonUpdated(c, "Notification marked read", dto.ToNotificationDTO(notif, adminID))
}
