package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/grading/dto"
	"schoolku_backend/internals/features/academics/grading/model"
	helper "schoolku_backend/internals/helpers"
)

type GradingSystemController struct {
	DB *gorm.DB
}

func NewGradingSystemController(db *gorm.DB) *GradingSystemController {
	return &GradingSystemController{DB: db}
}

// GET /api/academic/grading-systems
func (ctrl *GradingSystemController) GetGradingSystems(c *fiber.Ctx) error {
	var systems []model.GradingSystemModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("grading_system_created_at DESC").
		Find(&systems).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.NewGradingSystemResponses(systems))
}

// POST /api/academic/grading-systems
func (ctrl *GradingSystemController) CreateGradingSystem(c *fiber.Ctx) error {
	var req dto.CreateGradingSystemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	system, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grades payload")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&system).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Grading system created successfully", dto.NewGradingSystemResponse(system))
}
