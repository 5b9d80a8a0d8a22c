package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/academics/sessions/dto"
	"schoolku_backend/internals/features/academics/sessions/model"
	"schoolku_backend/internals/features/academics/sessions/service"
	helper "schoolku_backend/internals/helpers"
)

type AcademicSessionController struct {
	DB  *gorm.DB
	svc *service.SessionService
}

func NewAcademicSessionController(db *gorm.DB) *AcademicSessionController {
	return &AcademicSessionController{DB: db, svc: service.NewSessionService()}
}

/* ===================== LIST ===================== */
// GET /api/academic/sessions
func (ctrl *AcademicSessionController) GetSessions(c *fiber.Ctx) error {
	var sessions []model.AcademicSessionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("academic_session_start_date DESC").
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.NewAcademicSessionResponses(sessions))
}

/* ===================== CREATE ===================== */
// POST /api/academic/sessions
func (ctrl *AcademicSessionController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateAcademicSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	session := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Academic session created successfully", dto.NewAcademicSessionResponse(session))
}

/* ===================== UPDATE (partial) ===================== */
// PUT /api/academic/sessions/:id
func (ctrl *AcademicSessionController) UpdateSession(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateAcademicSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", fiber.Map{"academic_session_id": id})
	}

	var updated model.AcademicSessionModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.AcademicSessionModel{}).
		Where("academic_session_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}

	return helper.JsonUpdated(c, "Session updated successfully", dto.NewAcademicSessionResponse(updated))
}

/* ===================== ACTIVATE ===================== */
// PUT /api/academic/sessions/:id/activate
func (ctrl *AcademicSessionController) SetActiveSession(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	session, err := ctrl.svc.Activate(ctrl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Active session set successfully", dto.NewAcademicSessionResponse(*session))
}
