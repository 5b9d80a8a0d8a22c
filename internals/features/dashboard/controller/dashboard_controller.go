package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "schoolku_backend/internals/features/academics/classes/model"
	sessionService "schoolku_backend/internals/features/academics/sessions/service"
	attendanceModel "schoolku_backend/internals/features/attendance/model"
	"schoolku_backend/internals/features/dashboard/dto"
	examModel "schoolku_backend/internals/features/exams/model"
	feeModel "schoolku_backend/internals/features/fees/model"
	studentModel "schoolku_backend/internals/features/students/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	helper "schoolku_backend/internals/helpers"
)

type DashboardController struct {
	DB       *gorm.DB
	Sessions *sessionService.SessionService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, Sessions: sessionService.NewSessionService()}
}

/* ===================== STATS ===================== */
// GET /api/dashboard/stats
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	stats := dto.Stats{
		TodayAttendance: map[string]int64{
			attendanceModel.StatusPresent: 0,
			attendanceModel.StatusAbsent:  0,
			attendanceModel.StatusLate:    0,
			attendanceModel.StatusLeave:   0,
		},
		UpcomingExams: []dto.UpcomingExam{},
	}

	active, err := ctrl.Sessions.ActiveSession(db)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if active != nil {
		stats.ActiveSession = &dto.ActiveSessionInfo{
			SessionID: active.AcademicSessionID,
			Name:      active.AcademicSessionName,
		}
	}

	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_status = ?", "active").
		Count(&stats.TotalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	since := time.Now().UTC().AddDate(0, 0, -30)
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_created_at >= ?", since).
		Count(&stats.NewAdmissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_status = ?", "active").
		Count(&stats.TotalTeachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if active != nil {
		if err := db.Model(&classModel.ClassModel{}).
			Where("class_session_id = ? AND class_is_active = TRUE", active.AcademicSessionID).
			Count(&stats.TotalClasses).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	today := helper.DayStart(time.Now())
	var attendanceRows []struct {
		Status string `gorm:"column:attendance_status"`
		Count  int64  `gorm:"column:count"`
	}
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Select("attendance_status, COUNT(*) AS count").
		Where("attendance_date = ?", today).
		Group("attendance_status").
		Scan(&attendanceRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	for _, row := range attendanceRows {
		stats.TodayAttendance[row.Status] = row.Count
	}

	if active != nil {
		var feeRows []struct {
			Status string  `gorm:"column:fee_payment_status"`
			Count  int64   `gorm:"column:count"`
			Amount float64 `gorm:"column:amount"`
		}
		if err := db.Model(&feeModel.FeePaymentModel{}).
			Select("fee_payment_status, COUNT(*) AS count, COALESCE(SUM(fee_payment_total_amount),0) AS amount").
			Where("fee_payment_session_id = ?", active.AcademicSessionID).
			Group("fee_payment_status").
			Scan(&feeRows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, row := range feeRows {
			if row.Status == feeModel.PaymentStatusPaid {
				stats.FeeCollection.Paid = dto.FeeBucket{Count: row.Count, Amount: row.Amount}
			}
		}
	}

	var exams []examModel.ExamModel
	if err := db.Model(&examModel.ExamModel{}).
		Where("exam_start_date >= ?", today).
		Order("exam_start_date ASC").
		Limit(5).
		Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	for _, exam := range exams {
		stats.UpcomingExams = append(stats.UpcomingExams, dto.UpcomingExam{
			ExamID:    exam.ExamID,
			Name:      exam.ExamName,
			Type:      exam.ExamType,
			StartDate: exam.ExamStartDate,
		})
	}

	return helper.JsonOK(c, "", stats)
}

/* ===================== ATTENDANCE CHART ===================== */
// GET /api/dashboard/charts/attendance?days=7
func (ctrl *DashboardController) GetAttendanceChart(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days", "7"))
	if days <= 0 {
		days = 7
	}
	since := helper.DayStart(time.Now()).AddDate(0, 0, -(days - 1))

	var points []dto.AttendancePoint
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&attendanceModel.AttendanceModel{}).
		Select("attendance_date AS date, attendance_status AS status, COUNT(*) AS count").
		Where("attendance_date >= ?", since).
		Group("attendance_date, attendance_status").
		Order("attendance_date ASC").
		Scan(&points).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, points, len(points))
}

/* ===================== FEES CHART ===================== */
// GET /api/dashboard/charts/fees?months=6
func (ctrl *DashboardController) GetFeesChart(c *fiber.Ctx) error {
	months, _ := strconv.Atoi(c.Query("months", "6"))
	if months <= 0 {
		months = 6
	}
	since := helper.DayStart(time.Now()).AddDate(0, -(months - 1), 0)

	var points []dto.FeePoint
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&feeModel.FeePaymentModel{}).
		Select(`EXTRACT(YEAR FROM fee_payment_paid_date)::int AS year,
			EXTRACT(MONTH FROM fee_payment_paid_date)::int AS month,
			COALESCE(SUM(fee_payment_amount_paid),0) AS amount,
			COUNT(*) AS count`).
		Where("fee_payment_status IN ? AND fee_payment_paid_date >= ?",
			[]string{feeModel.PaymentStatusPaid, feeModel.PaymentStatusPartial}, since).
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&points).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, points, len(points))
}
