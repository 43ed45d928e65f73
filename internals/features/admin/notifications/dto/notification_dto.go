package dto

import (
	"time"

	"barprep_backend/internals/features/admin/notifications/model"
)

type NotificationDTO struct {
	NotificationID string         `json:"notification_id"`
	ActivityID     string         `json:"activity_id"`
	Type           string         `json:"type"`
	Action         string         `json:"action"`
	Description    string         `json:"description"`
	UserName       string         `json:"user_name,omitempty"`
	UserEmail      string         `json:"user_email,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	ActivityAt     time.Time      `json:"activity_at"`
	IsRead         bool           `json:"is_read"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ToNotificationDTO renders one row for the requesting admin; read state is
// per-admin, derived from the read_by list.
func ToNotificationDTO(n model.NotificationModel, adminID string) NotificationDTO {
	isRead := false
	for _, id := range n.NotificationReadBy {
		if id == adminID {
			isRead = true
			break
		}
	}
	return NotificationDTO{
		NotificationID: n.NotificationID.String(),
		ActivityID:     n.NotificationActivityID,
		Type:           n.NotificationType,
		Action:         n.NotificationAction,
		Description:    n.NotificationDescription,
		UserName:       n.NotificationUserName,
		UserEmail:      n.NotificationUserEmail,
		Metadata:       map[string]any(n.NotificationMetadata),
		ActivityAt:     n.NotificationActivityAt,
		IsRead:         isRead,
		CreatedAt:      n.CreatedAt,
	}
}
