package dto

import (
	userModel "barprep_backend/internals/features/users/user/model"
)

/* ===== Requests ===== */

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

/* ===== Responses ===== */

type AuthUserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func ToAuthUserResponse(u *userModel.UserModel) AuthUserResponse {
	return AuthUserResponse{
		UserID: u.UserID.String(),
		Name:   u.UserName,
		Email:  u.UserEmail,
		Role:   u.UserRole,
	}
}
