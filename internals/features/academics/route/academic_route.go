package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	classCtrl "schoolku_backend/internals/features/academics/classes/controller"
	gradingCtrl "schoolku_backend/internals/features/academics/grading/controller"
	sessionCtrl "schoolku_backend/internals/features/academics/sessions/controller"
	subjectCtrl "schoolku_backend/internals/features/academics/subjects/controller"
	timetableCtrl "schoolku_backend/internals/features/academics/timetables/controller"
	authmw "schoolku_backend/internals/middlewares/auth"
)

func AcademicRoutes(r fiber.Router, db *gorm.DB) {
	view := authmw.RequirePermission(constants.ModuleAcademics, constants.ActionView)
	create := authmw.RequirePermission(constants.ModuleAcademics, constants.ActionCreate)
	update := authmw.RequirePermission(constants.ModuleAcademics, constants.ActionUpdate)

	g := r.Group("/academic")

	// =====================
	// Academic Sessions
	// =====================
	sessions := sessionCtrl.NewAcademicSessionController(db)
	g.Get("/sessions", view, sessions.GetSessions)
	g.Post("/sessions", create, sessions.CreateSession)
	g.Put("/sessions/:id", update, sessions.UpdateSession)
	g.Put("/sessions/:id/activate", update, sessions.SetActiveSession)

	// =====================
	// Classes
	// =====================
	classes := classCtrl.NewClassController(db)
	g.Get("/classes", view, classes.GetClasses)
	g.Get("/classes/:id", view, classes.GetClass)
	g.Post("/classes", create, classes.CreateClass)
	g.Put("/classes/:id", update, classes.UpdateClass)

	// =====================
	// Subjects
	// =====================
	subjects := subjectCtrl.NewSubjectController(db)
	g.Get("/subjects", view, subjects.GetSubjects)
	g.Post("/subjects", create, subjects.CreateSubject)
	g.Put("/subjects/:id", update, subjects.UpdateSubject)

	// =====================
	// Grading Systems
	// =====================
	grading := gradingCtrl.NewGradingSystemController(db)
	g.Get("/grading-systems", view, grading.GetGradingSystems)
	g.Post("/grading-systems", create, grading.CreateGradingSystem)

	// =====================
	// Timetables
	// =====================
	timetables := timetableCtrl.NewTimetableController(db)
	g.Get("/timetables", view, timetables.GetTimetables)
	g.Post("/timetables", create, timetables.CreateTimetable)
	g.Put("/timetables/:id", update, timetables.UpdateTimetable)
}
