package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/exams/questions/controller"
)

// QuestionUserRoutes mounts the access-gated take view; the group must
// already require a session.
func QuestionUserRoutes(session fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)

	session.Get("/exams/:frontendId/questions", ctrl.GetExamQuestions)
}

func QuestionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)

	grp := admin.Group("/questions")
	grp.Get("/", ctrl.ListQuestions)
	grp.Post("/", ctrl.CreateQuestion)
	grp.Patch("/:id", ctrl.UpdateQuestion)
	grp.Delete("/:id", ctrl.DeleteQuestion)
}
