package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactModel struct {
	ContactID uuid.UUID `gorm:"column:contact_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contact_id"`

	ContactName    string `gorm:"column:contact_name;type:varchar(100);not null" json:"contact_name"`
	ContactEmail   string `gorm:"column:contact_email;type:varchar(255);not null" json:"contact_email"`
	ContactMessage string `gorm:"column:contact_message;type:text;not null" json:"contact_message"`

	ContactIsRead bool `gorm:"column:contact_is_read;not null;default:false" json:"contact_is_read"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContactModel) TableName() string {
	return "contacts"
}
