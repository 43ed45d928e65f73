package dto

import (
	"time"

	"barprep_backend/internals/features/users/user/model"
)

type UserDTO struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	HasGoogle bool      `json:"has_google"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN"`
}

func ToUserDTO(u model.UserModel) UserDTO {
	return UserDTO{
		UserID:    u.UserID.String(),
		Name:      u.UserName,
		Email:     u.UserEmail,
		Role:      u.UserRole,
		HasGoogle: u.UserGoogleID != nil,
		CreatedAt: u.CreatedAt,
	}
}
