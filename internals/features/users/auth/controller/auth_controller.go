package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/configs"
	"barprep_backend/internals/constants"
	notificationService "barprep_backend/internals/features/admin/notifications/service"
	"barprep_backend/internals/features/users/auth/dto"
	authService "barprep_backend/internals/features/users/auth/service"
	userModel "barprep_backend/internals/features/users/user/model"
	helper "barprep_backend/internals/helpers"
	"barprep_backend/internals/mailer"
	authMiddleware "barprep_backend/internals/middlewares/auth"
	"barprep_backend/internals/sessions"
)

var validateAuth = validator.New()

type AuthController struct {
	DB    *gorm.DB
	Store sessions.Store
	Mail  *mailer.Mailer
}

func NewAuthController(db *gorm.DB, store sessions.Store, mail *mailer.Mailer) *AuthController {
	return &AuthController{DB: db, Store: store, Mail: mail}
}

// =======================
// Register
// =======================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var existing userModel.UserModel
	if err := ctrl.DB.First(&existing, "user_email = ?", email).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "An account with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check account")
	}

	hash, err := authService.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	user := userModel.UserModel{
		UserName:         strings.TrimSpace(body.Name),
		UserEmail:        email,
		UserPasswordHash: &hash,
		UserRole:         constants.RoleUser,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	notificationService.RecordActivity(ctrl.DB, notificationService.Activity{
		ID:          notificationService.ActivityID("user", user.UserID),
		Type:        "user",
		Action:      "registered",
		Description: fmt.Sprintf("%s created an account", user.UserName),
		User:        user.UserName,
		Email:       user.UserEmail,
		Time:        user.CreatedAt,
	})

	if err := ctrl.openSession(c, &user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to open session")
	}
	return helper.JsonCreated(c, "Account created", dto.ToAuthUserResponse(&user))
}

// =======================
// Login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", email).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if user.UserPasswordHash == nil || !authService.CheckPassword(*user.UserPasswordHash, body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := ctrl.openSession(c, &user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to open session")
	}
	return helper.JsonOK(c, "Signed in", dto.ToAuthUserResponse(&user))
}

// =======================
// Google sign-in
// =======================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	identity, err := authService.VerifyGoogleIDToken(body.IDToken, configs.GoogleClientID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google sign-in failed")
	}

	email := strings.ToLower(identity.Email)

	var user userModel.UserModel
	err = ctrl.DB.First(&user, "user_google_id = ?", identity.Sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Link by email when the account predates Google sign-in.
		err = ctrl.DB.First(&user, "user_email = ?", email).Error
		if err == nil {
			if err := ctrl.DB.Model(&user).Update("user_google_id", identity.Sub).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link account")
			}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			user = userModel.UserModel{
				UserName:     identity.Name,
				UserEmail:    email,
				UserGoogleID: &identity.Sub,
				UserRole:     constants.RoleUser,
			}
			if user.UserName == "" {
				user.UserName = email
			}
			if err := ctrl.DB.Create(&user).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
			}
			notificationService.RecordActivity(ctrl.DB, notificationService.Activity{
				ID:          notificationService.ActivityID("user", user.UserID),
				Type:        "user",
				Action:      "registered",
				Description: fmt.Sprintf("%s created an account", user.UserName),
				User:        user.UserName,
				Email:       user.UserEmail,
				Time:        user.CreatedAt,
			})
		} else {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up account")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up account")
	}

	if err := ctrl.openSession(c, &user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to open session")
	}
	return helper.JsonOK(c, "Signed in", dto.ToAuthUserResponse(&user))
}

// =======================
// Logout / Me
// =======================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	if token, _ := c.Locals("session_token").(string); token != "" {
		if err := ctrl.Store.Delete(c.UserContext(), token); err != nil {
			log.Printf("[ERROR] delete session: %v", err)
		}
	}
	authMiddleware.ClearSessionCookie(c)
	return helper.JsonOK(c, "Signed out", nil)
}

func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID := authMiddleware.UserID(c)

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account no longer exists")
	}
	return helper.JsonOK(c, "", dto.ToAuthUserResponse(&user))
}

// =======================
// Password reset
// =======================
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var body dto.ForgotPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	// Same response whether or not the account exists.
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", email).Error; err == nil {
		token, err := authService.GenerateResetToken(configs.ResetTokenSecret, user.UserID.String(), user.UserEmail)
		if err != nil {
			log.Printf("[ERROR] reset token for %s: %v", user.UserID, err)
		} else {
			ctrl.Mail.Send(user.UserEmail, "Reset your password",
				fmt.Sprintf("Hi %s,\n\nUse this token to reset your password within 15 minutes:\n\n%s\n", user.UserName, token))
		}
	}

	return helper.JsonOK(c, "If that email exists, a reset link has been sent", nil)
}

func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var body dto.ResetPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	userID, _, err := authService.ParseResetToken(configs.ResetTokenSecret, body.Token)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired reset token")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired reset token")
	}

	hash, err := authService.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	if err := ctrl.DB.Model(&user).Update("user_password_hash", hash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	return helper.JsonOK(c, "Password updated", nil)
}

func (ctrl *AuthController) openSession(c *fiber.Ctx, user *userModel.UserModel) error {
	token, err := sessions.NewToken()
	if err != nil {
		return err
	}
	sess := sessions.Session{
		UserID:   user.UserID.String(),
		UserName: user.UserName,
		Email:    user.UserEmail,
		Role:     user.UserRole,
	}
	if err := ctrl.Store.Set(c.UserContext(), token, sess, sessions.SessionTTL); err != nil {
		return err
	}
	authMiddleware.SetSessionCookie(c, token)
	return nil
}
