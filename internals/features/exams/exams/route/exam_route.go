package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"barprep_backend/internals/features/exams/exams/controller"
)

func ExamPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExamController(db)

	grp := api.Group("/exams")
	grp.Get("/", ctrl.ListExams)
	grp.Get("/:frontendId", ctrl.GetExam)
}

func ExamAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExamController(db)

	grp := admin.Group("/exams")
	grp.Get("/:frontendId", ctrl.GetExam)
	grp.Patch("/:frontendId", ctrl.UpdateExam)
}
