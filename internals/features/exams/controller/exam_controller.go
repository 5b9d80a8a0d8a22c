package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/exams/dto"
	"schoolku_backend/internals/features/exams/model"
	helper "schoolku_backend/internals/helpers"
)

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/exams?session=&classId=
func (ctrl *ExamController) GetExams(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDQuery(c, "session")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParseUUIDQuery(c, "classId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ExamModel{})
	if sessionID != uuid.Nil {
		q = q.Where("exam_session_id = ?", sessionID)
	}
	if classID != uuid.Nil {
		q = q.Where(`exam_classes @> ?`, `[{"classId":"`+classID.String()+`"}]`)
	}

	var exams []model.ExamModel
	if err := q.Order("exam_start_date DESC").Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, exams, len(exams))
}

/* ===================== DETAIL ===================== */
// GET /api/exams/:id
func (ctrl *ExamController) GetExam(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var exam model.ExamModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&exam, "exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", exam)
}

/* ===================== CREATE ===================== */
// POST /api/exams
func (ctrl *ExamController) CreateExam(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	startDate, err := helper.ParseDate(req.StartDate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	endDate, err := helper.ParseDate(req.EndDate)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if endDate.Before(startDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date must not be before start_date")
	}

	exam := model.ExamModel{
		ExamName:            req.Name,
		ExamType:            req.Type,
		ExamSessionID:       req.SessionID,
		ExamClasses:         req.Classes,
		ExamSchedule:        req.Schedule,
		ExamGradingSystemID: req.GradingSystemID,
		ExamStartDate:       startDate,
		ExamEndDate:         endDate,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&exam).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Exam created successfully", exam)
}

/* ===================== UPDATE ===================== */
// PUT /api/exams/:id
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["exam_name"] = *req.Name
	}
	if req.Type != nil {
		updates["exam_type"] = *req.Type
	}
	if len(req.Classes) > 0 {
		updates["exam_classes"] = req.Classes
	}
	if len(req.Schedule) > 0 {
		updates["exam_schedule"] = req.Schedule
	}
	if req.GradingSystemID != nil {
		updates["exam_grading_system_id"] = *req.GradingSystemID
	}
	if req.StartDate != nil {
		startDate, err := helper.ParseDate(*req.StartDate)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		updates["exam_start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := helper.ParseDate(*req.EndDate)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		updates["exam_end_date"] = endDate
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	var exam model.ExamModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&exam).
		Clauses(clause.Returning{}).
		Where("exam_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}

	return helper.JsonUpdated(c, "Exam updated successfully", exam)
}

/* ===================== PUBLISH ===================== */
// PUT /api/exams/:id/publish
func (ctrl *ExamController) PublishExam(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var exam model.ExamModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&exam).
		Clauses(clause.Returning{}).
		Where("exam_id = ?", id).
		Update("exam_is_published", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}

	return helper.JsonUpdated(c, "Exam published successfully", exam)
}
