package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	userCtrl "schoolku_backend/internals/features/users/controller"
	"schoolku_backend/internals/middlewares"
	authmw "schoolku_backend/internals/middlewares/auth"
)

// AuthRoutes are mounted before the authenticated groups; login stays public.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userCtrl.NewAuthController(db)

	g := app.Group("/api/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Post("/register",
		authmw.AuthMiddleware(db),
		authmw.RequireRole(constants.RoleSuperAdmin),
		ctrl.Register)
	g.Get("/me", authmw.AuthMiddleware(db), ctrl.Me)
	g.Put("/update-password", authmw.AuthMiddleware(db), ctrl.UpdatePassword)
	g.Post("/logout", authmw.AuthMiddleware(db), ctrl.Logout)
}

// UserRoutes mounts user administration under the authenticated group.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewAuthController(db)

	g := r.Group("/users")
	g.Get("/", authmw.RequireRole(constants.RoleSuperAdmin), ctrl.GetUsers)
	g.Get("/:id", authmw.RequireRole(constants.RoleSuperAdmin), ctrl.GetUser)
	g.Put("/:id", authmw.RequireRole(constants.RoleSuperAdmin), ctrl.UpdateUser)
	g.Put("/:id/permissions",
		authmw.RequirePermission(constants.ModuleUsers, constants.ActionUpdate),
		ctrl.UpdatePermissions)
	g.Put("/:id/toggle-status", authmw.RequireRole(constants.RoleSuperAdmin), ctrl.ToggleUserStatus)
	g.Delete("/:id", authmw.RequireRole(constants.RoleSuperAdmin), ctrl.DeleteUser)
}
