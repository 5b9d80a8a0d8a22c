package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicRoute "schoolku_backend/internals/features/academics/route"
	attendanceRoute "schoolku_backend/internals/features/attendance/route"
	announcementRoute "schoolku_backend/internals/features/communication/route"
	dashboardRoute "schoolku_backend/internals/features/dashboard/route"
	examRoute "schoolku_backend/internals/features/exams/route"
	feeRoute "schoolku_backend/internals/features/fees/route"
	schoolRoute "schoolku_backend/internals/features/schools/route"
	studentRoute "schoolku_backend/internals/features/students/route"
	teacherRoute "schoolku_backend/internals/features/teachers/route"
	userRoute "schoolku_backend/internals/features/users/route"
	authmw "schoolku_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature group under /api. Login and register live
// outside the auth middleware; everything else requires a valid token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	userRoute.AuthRoutes(app, db)

	api := app.Group("/api", authmw.AuthMiddleware(db))

	userRoute.UserRoutes(api, db)
	schoolRoute.SchoolRoutes(api, db)
	academicRoute.AcademicRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	examRoute.ExamRoutes(api, db)
	feeRoute.FeeRoutes(api, db)
	announcementRoute.AnnouncementRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
