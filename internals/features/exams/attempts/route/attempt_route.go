package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/exams/attempts/controller"
)

// AttemptPublicRoutes must be mounted before any /exams/:frontendId route so
// the static "purchased" segment wins the match. The group carries
// OptionalSession: anonymous callers get an empty purchase list.
func AttemptPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttemptController(db)

	api.Get("/exams/purchased", ctrl.ListPurchased)
}

func AttemptUserRoutes(session fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttemptController(db)

	session.Post("/exams/submit", ctrl.SubmitAttempt)
	session.Get("/exams/:frontendId/access", ctrl.CheckAccess)
	session.Get("/attempts", ctrl.ListMyAttempts)
	session.Get("/attempts/:id", ctrl.GetAttempt)
}
