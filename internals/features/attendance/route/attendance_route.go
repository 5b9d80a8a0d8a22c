package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	attendanceCtrl "schoolku_backend/internals/features/attendance/controller"
	authmw "schoolku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceController(db)

	view := authmw.RequirePermission(constants.ModuleStudents, constants.ActionView)
	create := authmw.RequirePermission(constants.ModuleStudents, constants.ActionCreate)
	update := authmw.RequirePermission(constants.ModuleStudents, constants.ActionUpdate)

	g := r.Group("/attendance")
	// /report before /:id so the literal path wins
	g.Get("/report", view, ctrl.GetAttendanceReport)
	g.Get("/", view, ctrl.GetAttendance)
	g.Post("/", create, ctrl.MarkAttendance)
	g.Put("/:id", update, ctrl.CorrectAttendance)
}
