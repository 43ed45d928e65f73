package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/admin/contacts/controller"
	"barprep_backend/internals/mailer"
	"barprep_backend/internals/middlewares"
	authMiddleware "barprep_backend/internals/middlewares/auth"
	"barprep_backend/internals/sessions"
)

func ContactPublicRoutes(public fiber.Router, db *gorm.DB, mail *mailer.Mailer) {
	ctrl := controller.NewContactController(db, mail)

	public.Post("/contact", middlewares.ContactRateLimiter(), ctrl.CreateContact)
	public.Get("/contact/:id", ctrl.GetContact)
}

// ContactAdminRoutes: update and delete share the public path shape
// (/contact/:id) but are admin-gated; the inbox listing sits under the admin
// ring.
func ContactAdminRoutes(api fiber.Router, admin fiber.Router, db *gorm.DB, mail *mailer.Mailer, store sessions.Store) {
	ctrl := controller.NewContactController(db, mail)

	requireAdmin := authMiddleware.RequireAdmin()
	requireSession := authMiddleware.RequireSession(store)

	api.Patch("/contact/:id", requireSession, requireAdmin, ctrl.UpdateContact)
	api.Delete("/contact/:id", requireSession, requireAdmin, ctrl.DeleteContact)

	admin.Get("/contacts", ctrl.ListContacts)
}
