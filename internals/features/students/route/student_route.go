package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	studentCtrl "schoolku_backend/internals/features/students/controller"
	authmw "schoolku_backend/internals/middlewares/auth"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	g := r.Group("/students")
	g.Get("/", authmw.RequirePermission(constants.ModuleStudents, constants.ActionView), ctrl.GetStudents)
	g.Get("/:id", authmw.RequirePermission(constants.ModuleStudents, constants.ActionView), ctrl.GetStudent)
	g.Post("/", authmw.RequirePermission(constants.ModuleStudents, constants.ActionCreate), ctrl.CreateStudent)
	g.Post("/promote", authmw.RequirePermission(constants.ModuleStudents, constants.ActionUpdate), ctrl.PromoteStudents)
	g.Put("/:id", authmw.RequirePermission(constants.ModuleStudents, constants.ActionUpdate), ctrl.UpdateStudent)
	g.Put("/:id/status", authmw.RequirePermission(constants.ModuleStudents, constants.ActionUpdate), ctrl.UpdateStudentStatus)
	g.Put("/:id/approve", authmw.RequirePermission(constants.ModuleStudents, constants.ActionUpdate), ctrl.ApproveAdmission)
	g.Delete("/:id", authmw.RequirePermission(constants.ModuleStudents, constants.ActionDelete), ctrl.DeleteStudent)
}
