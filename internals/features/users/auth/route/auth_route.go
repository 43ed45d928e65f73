package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/users/auth/controller"
	"barprep_backend/internals/mailer"
	"barprep_backend/internals/middlewares"
	authMiddleware "barprep_backend/internals/middlewares/auth"
	"barprep_backend/internals/sessions"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, store sessions.Store, mail *mailer.Mailer) {
	ctrl := controller.NewAuthController(db, store, mail)

	grp := api.Group("/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	grp.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	grp.Post("/reset-password", ctrl.ResetPassword)

	grp.Post("/logout", authMiddleware.RequireSession(store), ctrl.Logout)
	grp.Get("/me", authMiddleware.RequireSession(store), ctrl.Me)
}
