package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	examCtrl "schoolku_backend/internals/features/exams/controller"
	authmw "schoolku_backend/internals/middlewares/auth"
)

func ExamRoutes(r fiber.Router, db *gorm.DB) {
	view := authmw.RequirePermission(constants.ModuleAcademics, constants.ActionView)
	create := authmw.RequirePermission(constants.ModuleAcademics, constants.ActionCreate)
	update := authmw.RequirePermission(constants.ModuleAcademics, constants.ActionUpdate)

	g := r.Group("/exams")

	// =====================
	// Results (before /:id so literal paths win)
	// =====================
	results := examCtrl.NewResultController(db)
	g.Get("/results", view, results.GetResults)
	g.Post("/results", create, results.CreateResult)
	g.Put("/results/publish", update, results.PublishResults)
	g.Put("/results/:id", update, results.UpdateResult)

	// =====================
	// Exams
	// =====================
	exams := examCtrl.NewExamController(db)
	g.Get("/", view, exams.GetExams)
	g.Get("/:id", view, exams.GetExam)
	g.Post("/", create, exams.CreateExam)
	g.Put("/:id/publish", update, exams.PublishExam)
	g.Put("/:id", update, exams.UpdateExam)
}
