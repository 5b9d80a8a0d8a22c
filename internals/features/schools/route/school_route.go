package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	schoolCtrl "schoolku_backend/internals/features/schools/controller"
	authmw "schoolku_backend/internals/middlewares/auth"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolCtrl.NewSchoolController(db)

	g := r.Group("/school")
	g.Get("/", authmw.RequirePermission(constants.ModuleSchoolSetup, constants.ActionView), ctrl.GetSchool)
	g.Put("/", authmw.RequirePermission(constants.ModuleSchoolSetup, constants.ActionUpdate), ctrl.UpsertSchool)
}
