package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/academics/timetables/model"
	helper "schoolku_backend/internals/helpers"
)

type TimetableController struct {
	DB *gorm.DB
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db}
}

type createTimetableRequest struct {
	ClassID       uuid.UUID      `json:"class_id"       validate:"required,uuid4"`
	Section       string         `json:"section"        validate:"required,max=10"`
	SessionID     uuid.UUID      `json:"session_id"     validate:"required,uuid4"`
	Schedule      datatypes.JSON `json:"schedule"       validate:"omitempty"`
	EffectiveFrom *time.Time     `json:"effective_from" validate:"omitempty"`
	EffectiveTo   *time.Time     `json:"effective_to"   validate:"omitempty"`
}

type updateTimetableRequest struct {
	Schedule      datatypes.JSON `json:"schedule"       validate:"omitempty"`
	EffectiveFrom *time.Time     `json:"effective_from" validate:"omitempty"`
	EffectiveTo   *time.Time     `json:"effective_to"   validate:"omitempty"`
}

// GET /api/academic/timetables?classId=&section=&session=
func (ctrl *TimetableController) GetTimetables(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDQuery(c, "classId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sessionID, err := helper.ParseUUIDQuery(c, "session")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.TimetableModel{})
	if classID != uuid.Nil {
		q = q.Where("timetable_class_id = ?", classID)
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("timetable_section = ?", section)
	}
	if sessionID != uuid.Nil {
		q = q.Where("timetable_session_id = ?", sessionID)
	}

	var timetables []model.TimetableModel
	if err := q.Order("timetable_created_at DESC").Find(&timetables).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", timetables)
}

// POST /api/academic/timetables
func (ctrl *TimetableController) CreateTimetable(c *fiber.Ctx) error {
	var req createTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	timetable := model.TimetableModel{
		TimetableClassID:       req.ClassID,
		TimetableSection:       req.Section,
		TimetableSessionID:     req.SessionID,
		TimetableSchedule:      req.Schedule,
		TimetableEffectiveFrom: req.EffectiveFrom,
		TimetableEffectiveTo:   req.EffectiveTo,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&timetable).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Timetable created successfully", timetable)
}

// PUT /api/academic/timetables/:id
func (ctrl *TimetableController) UpdateTimetable(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req updateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if len(req.Schedule) > 0 {
		updates["timetable_schedule"] = req.Schedule
	}
	if req.EffectiveFrom != nil {
		updates["timetable_effective_from"] = *req.EffectiveFrom
	}
	if req.EffectiveTo != nil {
		updates["timetable_effective_to"] = *req.EffectiveTo
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", fiber.Map{"timetable_id": id})
	}

	var updated model.TimetableModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.TimetableModel{}).
		Where("timetable_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Timetable not found")
	}

	return helper.JsonUpdated(c, "Timetable updated successfully", updated)
}
