package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`

	// Nullable so Google-only accounts can exist without a password.
	UserPasswordHash *string `gorm:"column:user_password_hash;type:varchar(100)" json:"-"`
	UserGoogleID     *string `gorm:"column:user_google_id;type:varchar(64);uniqueIndex" json:"-"`

	UserRole string `gorm:"column:user_role;type:varchar(10);not null;default:'USER'" json:"user_role"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
