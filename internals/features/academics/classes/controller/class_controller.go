package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/academics/classes/dto"
	"schoolku_backend/internals/features/academics/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/academic/classes?session=
func (ctrl *ClassController) GetClasses(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDQuery(c, "session")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ClassModel{})
	if sessionID != uuid.Nil {
		q = q.Where("class_session_id = ?", sessionID)
	}

	var classes []model.ClassModel
	if err := q.Order("class_level ASC").Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.NewClassResponses(classes))
}

/* ===================== DETAIL ===================== */
// GET /api/academic/classes/:id
func (ctrl *ClassController) GetClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var class model.ClassModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", id).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.NewClassResponse(class))
}

/* ===================== CREATE ===================== */
// POST /api/academic/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class already exists for this session")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Class created successfully", dto.NewClassResponse(class))
}

/* ===================== UPDATE (partial) ===================== */
// PUT /api/academic/classes/:id
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", fiber.Map{"class_id": id})
	}

	var updated model.ClassModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ClassModel{}).
		Where("class_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if res.Error != nil {
		if helper.IsDuplicateKey(res.Error) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class already exists for this session")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	return helper.JsonUpdated(c, "Class updated successfully", dto.NewClassResponse(updated))
}
