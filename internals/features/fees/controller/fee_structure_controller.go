package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/fees/dto"
	"schoolku_backend/internals/features/fees/model"
	"schoolku_backend/internals/features/fees/service"
	helper "schoolku_backend/internals/helpers"
)

type FeeStructureController struct {
	DB *gorm.DB
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/fees/structures?session=
func (ctrl *FeeStructureController) GetFeeStructures(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDQuery(c, "session")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.FeeStructureModel{})
	if sessionID != uuid.Nil {
		q = q.Where("fee_structure_session_id = ?", sessionID)
	}

	var structures []model.FeeStructureModel
	if err := q.Order("fee_structure_created_at DESC").Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, structures, len(structures))
}

/* ===================== DETAIL ===================== */
// GET /api/fees/structures/:id
func (ctrl *FeeStructureController) GetFeeStructure(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var structure model.FeeStructureModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&structure, "fee_structure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", structure)
}

/* ===================== CREATE ===================== */
// POST /api/fees/structures
func (ctrl *FeeStructureController) CreateFeeStructure(c *fiber.Ctx) error {
	var req dto.CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	structure := model.FeeStructureModel{
		FeeStructureName:         req.Name,
		FeeStructureSessionID:    req.SessionID,
		FeeStructureClasses:      req.Classes,
		FeeStructureFeeTypes:     req.FeeTypes,
		FeeStructureTotalAmount:  req.TotalAmount,
		FeeStructureInstallments: req.Installments,
		FeeStructureDiscounts:    req.Discounts,
		FeeStructureLateFine:     req.LateFine,
		FeeStructureIsActive:     active,
	}
	structure.FeeStructureTotalAmount = service.StructureTotal(structure.FeeTypes(), req.TotalAmount)

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&structure).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Fee structure created successfully", structure)
}

/* ===================== UPDATE ===================== */
// PUT /api/fees/structures/:id
func (ctrl *FeeStructureController) UpdateFeeStructure(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["fee_structure_name"] = *req.Name
	}
	if len(req.Classes) > 0 {
		updates["fee_structure_classes"] = req.Classes
	}
	if len(req.FeeTypes) > 0 {
		updates["fee_structure_fee_types"] = req.FeeTypes
		// the total follows the fee types
		probe := model.FeeStructureModel{FeeStructureFeeTypes: req.FeeTypes}
		updates["fee_structure_total_amount"] = service.StructureTotal(probe.FeeTypes(), 0)
	}
	if len(req.Installments) > 0 {
		updates["fee_structure_installments"] = req.Installments
	}
	if len(req.Discounts) > 0 {
		updates["fee_structure_discounts"] = req.Discounts
	}
	if len(req.LateFine) > 0 {
		updates["fee_structure_late_fine"] = req.LateFine
	}
	if req.IsActive != nil {
		updates["fee_structure_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	var structure model.FeeStructureModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&structure).
		Clauses(clause.Returning{}).
		Where("fee_structure_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee structure not found")
	}

	return helper.JsonUpdated(c, "Fee structure updated successfully", structure)
}
