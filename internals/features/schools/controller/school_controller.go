package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/schools/model"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

type upsertSchoolRequest struct {
	Name     string         `json:"name"     validate:"required,max=200"`
	Address  datatypes.JSON `json:"address"  validate:"omitempty"`
	Contact  datatypes.JSON `json:"contact"  validate:"omitempty"`
	Settings datatypes.JSON `json:"settings" validate:"omitempty"`
}

/* ===================== GET ===================== */
// GET /api/school
func (ctrl *SchoolController) GetSchool(c *fiber.Ctx) error {
	var school model.SchoolModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("school_created_at ASC").
		First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School profile not set up yet")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", school)
}

/* ===================== UPSERT ===================== */
// PUT /api/school
func (ctrl *SchoolController) UpsertSchool(c *fiber.Ctx) error {
	var req upsertSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var school model.SchoolModel
	err := db.Order("school_created_at ASC").First(&school).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		school = model.SchoolModel{
			SchoolName:     req.Name,
			SchoolAddress:  req.Address,
			SchoolContact:  req.Contact,
			SchoolSettings: req.Settings,
		}
		if err := db.Create(&school).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "School profile created successfully", school)
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{"school_name": req.Name}
	if len(req.Address) > 0 {
		updates["school_address"] = req.Address
	}
	if len(req.Contact) > 0 {
		updates["school_contact"] = req.Contact
	}
	if len(req.Settings) > 0 {
		updates["school_settings"] = req.Settings
	}

	if err := db.Model(&school).
		Clauses(clause.Returning{}).
		Where("school_id = ?", school.SchoolID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "School profile updated successfully", school)
}
