package dto

import (
	"time"

	"barprep_backend/internals/features/admin/contacts/model"
)

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

type UpdateContactRequest struct {
	IsRead *bool `json:"is_read" validate:"required"`
}

type ContactDTO struct {
	ContactID string    `json:"contact_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToContactDTO(ct model.ContactModel) ContactDTO {
	return ContactDTO{
		ContactID: ct.ContactID.String(),
		Name:      ct.ContactName,
		Email:     ct.ContactEmail,
		Message:   ct.ContactMessage,
		IsRead:    ct.ContactIsRead,
		CreatedAt: ct.CreatedAt,
	}
}
