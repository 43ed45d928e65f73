package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactRoute "barprep_backend/internals/features/admin/contacts/route"
	notificationRoute "barprep_backend/internals/features/admin/notifications/route"
	attemptRoute "barprep_backend/internals/features/exams/attempts/route"
	examRoute "barprep_backend/internals/features/exams/exams/route"
	questionRoute "barprep_backend/internals/features/exams/questions/route"
	cartRoute "barprep_backend/internals/features/shop/carts/route"
	orderRoute "barprep_backend/internals/features/shop/orders/route"
	paymentRoute "barprep_backend/internals/features/shop/payments/route"
	authRoute "barprep_backend/internals/features/users/auth/route"
	userRoute "barprep_backend/internals/features/users/user/route"
	"barprep_backend/internals/mailer"
	authMiddleware "barprep_backend/internals/middlewares/auth"
	"barprep_backend/internals/sessions"
)

// SetupRoutes mounts the whole API under /api in three rings: public,
// session-required, and admin. Registration order matters for the exam
// routes: the static /exams/purchased path must be declared before the
// /exams/:frontendId wildcard or the wildcard swallows it.
func SetupRoutes(app *fiber.App, db *gorm.DB, store sessions.Store, mail *mailer.Mailer) {
	api := app.Group("/api")

	// ---- public ----
	authRoute.AuthRoutes(api, db, store, mail)
	contactRoute.ContactPublicRoutes(api, db, mail)
	paymentRoute.PaymentPublicRoutes(api, db)

	// /exams/purchased works signed-out (empty list), so it rides on
	// OptionalSession, and is mounted ahead of the :frontendId routes.
	optional := api.Group("", authMiddleware.OptionalSession(store))
	attemptRoute.AttemptPublicRoutes(optional, db)
	examRoute.ExamPublicRoutes(api, db)

	// ---- session required ----
	session := api.Group("", authMiddleware.RequireSession(store))
	questionRoute.QuestionUserRoutes(session, db)
	attemptRoute.AttemptUserRoutes(session, db)
	cartRoute.CartUserRoutes(session, db)
	orderRoute.OrderUserRoutes(session, db)
	paymentRoute.PaymentUserRoutes(session, db)

	// ---- admin ----
	admin := api.Group("/admin",
		authMiddleware.RequireSession(store),
		authMiddleware.RequireAdmin(),
	)
	userRoute.UserAdminRoutes(admin, db)
	examRoute.ExamAdminRoutes(admin, db)
	questionRoute.QuestionAdminRoutes(admin, db)
	orderRoute.OrderAdminRoutes(admin, db)
	notificationRoute.NotificationAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(api, admin, db, mail, store)
}
