package controller

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/attendance/dto"
	"schoolku_backend/internals/features/attendance/model"
	"schoolku_backend/internals/features/attendance/service"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Service: service.NewAttendanceService()}
}

/* ===================== MARK (BULK) ===================== */
// POST /api/attendance
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	for _, entry := range req.AttendanceRecords {
		if !model.ValidStatus(entry.Status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance status: "+entry.Status)
		}
	}

	date, err := helper.ParseDate(req.Date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	markedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	records := req.ToModels(date, markedBy)
	result, err := ctrl.Service.MarkBulk(ctrl.DB.WithContext(c.UserContext()), records)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// partial batch: some students already have a record for this date
	if len(result.Duplicates) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Attendance already marked for some students on this date",
			"data":    result,
		})
	}

	return helper.JsonCreated(c, "Attendance marked successfully", result.Inserted)
}

/* ===================== LIST ===================== */
// GET /api/attendance?date=|startDate=&endDate=&studentId=&classId=&section=&session=&status=
func (ctrl *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDQuery(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParseUUIDQuery(c, "classId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sessionID, err := helper.ParseUUIDQuery(c, "session")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.AttendanceModel{})

	if raw := c.Query("date"); raw != "" {
		date, err := helper.ParseDate(raw)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("attendance_date = ?", date)
	} else if start, end := c.Query("startDate"), c.Query("endDate"); start != "" && end != "" {
		startDate, err := helper.ParseDate(start)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		endDate, err := helper.ParseDate(end)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("attendance_date BETWEEN ? AND ?", startDate, endDate)
	}

	if studentID != uuid.Nil {
		q = q.Where("attendance_student_id = ?", studentID)
	}
	if classID != uuid.Nil {
		q = q.Where("attendance_class_id = ?", classID)
	}
	if sessionID != uuid.Nil {
		q = q.Where("attendance_session_id = ?", sessionID)
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("attendance_section = ?", section)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("attendance_status = ?", status)
	}

	var records []model.AttendanceModel
	if err := q.Order("attendance_date DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, records, len(records))
}

/* ===================== CORRECT ===================== */
// PUT /api/attendance/:id
func (ctrl *AttendanceController) CorrectAttendance(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CorrectAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !model.ValidStatus(req.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance status: "+req.Status)
	}

	correctedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var record model.AttendanceModel
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, "attendance_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
			}
			return err
		}

		corrections := append(record.Corrections(), model.Correction{
			PreviousStatus: record.AttendanceStatus,
			NewStatus:      req.Status,
			Reason:         req.Reason,
			CorrectedBy:    correctedBy,
			CorrectionDate: time.Now().UTC(),
		})
		raw, err := json.Marshal(corrections)
		if err != nil {
			return err
		}

		updates := map[string]any{
			"attendance_status":      req.Status,
			"attendance_corrections": raw,
		}
		if req.Remarks != nil {
			updates["attendance_remarks"] = req.Remarks
		}

		return tx.Model(&record).
			Clauses(clause.Returning{}).
			Where("attendance_id = ?", id).
			Updates(updates).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Attendance corrected successfully", record)
}

/* ===================== REPORT ===================== */
// GET /api/attendance/report?startDate=&endDate=&studentId=&classId=&section=
func (ctrl *AttendanceController) GetAttendanceReport(c *fiber.Ctx) error {
	start, end := c.Query("startDate"), c.Query("endDate")
	if start == "" || end == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "startDate and endDate are required")
	}
	startDate, err := helper.ParseDate(start)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	endDate, err := helper.ParseDate(end)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	studentID, err := helper.ParseUUIDQuery(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParseUUIDQuery(c, "classId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctrl.DB.WithContext(c.UserContext())
	rows, err := ctrl.Service.Report(db, service.ReportFilter{
		StartDate: startDate,
		EndDate:   endDate,
		StudentID: studentID,
		ClassID:   classID,
		Section:   c.Query("section"),
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.Service.DecorateReport(db, rows); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, rows, len(rows))
}
