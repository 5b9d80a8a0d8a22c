package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	teacherCtrl "schoolku_backend/internals/features/teachers/controller"
	authmw "schoolku_backend/internals/middlewares/auth"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherCtrl.NewTeacherController(db)

	g := r.Group("/teachers")
	g.Get("/", authmw.RequirePermission(constants.ModuleTeachers, constants.ActionView), ctrl.GetTeachers)
	g.Get("/:id", authmw.RequirePermission(constants.ModuleTeachers, constants.ActionView), ctrl.GetTeacher)
	g.Post("/", authmw.RequirePermission(constants.ModuleTeachers, constants.ActionCreate), ctrl.CreateTeacher)
	g.Put("/:id", authmw.RequirePermission(constants.ModuleTeachers, constants.ActionUpdate), ctrl.UpdateTeacher)
	g.Put("/:id/assign-subjects", authmw.RequirePermission(constants.ModuleTeachers, constants.ActionUpdate), ctrl.AssignSubjects)
	g.Put("/:id/assign-classes", authmw.RequirePermission(constants.ModuleTeachers, constants.ActionUpdate), ctrl.AssignClasses)
	g.Delete("/:id", authmw.RequirePermission(constants.ModuleTeachers, constants.ActionDelete), ctrl.DeleteTeacher)
}
