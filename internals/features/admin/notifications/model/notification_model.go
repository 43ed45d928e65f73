package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

/* ===== Activity sources ===== */

const (
	ActivityTypeUser     = "user"
	ActivityTypeQuestion = "question"
	ActivityTypeOrder    = "order"
	ActivityTypePayment  = "payment"
	ActivityTypeAttempt  = "attempt"
	ActivityTypeContact  = "contact"
)

// NotificationModel mirrors a derived activity. notification_activity_id is
// the idempotency key (e.g. "order-<id>"): repeated syncs upsert the same
// row instead of duplicating it.
type NotificationModel struct {
	NotificationID uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`

	NotificationActivityID string `gorm:"column:notification_activity_id;type:varchar(100);not null;uniqueIndex" json:"notification_activity_id"`

	NotificationType        string `gorm:"column:notification_type;type:varchar(20);not null" json:"notification_type"`
	NotificationAction      string `gorm:"column:notification_action;type:varchar(40);not null" json:"notification_action"`
	NotificationDescription string `gorm:"column:notification_description;type:text" json:"notification_description"`

	NotificationUserName  string `gorm:"column:notification_user_name;type:varchar(100)" json:"notification_user_name"`
	NotificationUserEmail string `gorm:"column:notification_user_email;type:varchar(255)" json:"notification_user_email"`

	NotificationMetadata datatypes.JSONMap `gorm:"column:notification_metadata;type:jsonb" json:"notification_metadata,omitempty"`

	// When the underlying activity happened, not when this row was synced.
	NotificationActivityAt time.Time `gorm:"column:notification_activity_at;not null;index" json:"notification_activity_at"`

	// Admin ids that have marked this notification read.
	NotificationReadBy pq.StringArray `gorm:"column:notification_read_by;type:text[]" json:"notification_read_by"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
