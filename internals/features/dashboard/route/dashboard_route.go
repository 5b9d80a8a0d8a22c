package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	dashboardCtrl "schoolku_backend/internals/features/dashboard/controller"
	authmw "schoolku_backend/internals/middlewares/auth"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := dashboardCtrl.NewDashboardController(db)

	view := authmw.RequirePermission(constants.ModuleReports, constants.ActionView)

	g := r.Group("/dashboard")
	g.Get("/stats", view, ctrl.GetStats)
	g.Get("/charts/attendance", view, ctrl.GetAttendanceChart)
	g.Get("/charts/fees", view, ctrl.GetFeesChart)
}
