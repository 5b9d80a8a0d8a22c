package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/teachers/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

type createTeacherRequest struct {
	EmployeeID     string         `json:"employee_id"    validate:"omitempty,max=30"`
	Profile        datatypes.JSON `json:"profile"        validate:"required"`
	Qualifications datatypes.JSON `json:"qualifications" validate:"omitempty"`
	Employment     datatypes.JSON `json:"employment"     validate:"omitempty"`
	Subjects       []string       `json:"subjects"       validate:"omitempty,dive,max=100"`
}

type updateTeacherRequest struct {
	Profile        datatypes.JSON `json:"profile"        validate:"omitempty"`
	Qualifications datatypes.JSON `json:"qualifications" validate:"omitempty"`
	Employment     datatypes.JSON `json:"employment"     validate:"omitempty"`
	Subjects       []string       `json:"subjects"       validate:"omitempty,dive,max=100"`
	Status         *string        `json:"status"         validate:"omitempty,oneof=active inactive on_leave resigned"`
}

/* ===================== LIST ===================== */
// GET /api/teachers?status=&search=&page=&limit=
func (ctrl *TeacherController) GetTeachers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 200)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.TeacherModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("teacher_status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			ctrl.DB.Where("teacher_profile->>'firstName' ILIKE ?", like).
				Or("teacher_profile->>'lastName' ILIKE ?", like).
				Or("teacher_employee_id ILIKE ?", like),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var teachers []model.TeacherModel
	if err := q.
		Order("teacher_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonPage(c, teachers, total, paging.Page, paging.Limit)
}

/* ===================== DETAIL ===================== */
// GET /api/teachers/:id
func (ctrl *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ?", id).
		First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", teacher)
}

/* ===================== CREATE ===================== */
// POST /api/teachers
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req createTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	employeeID := strings.ToUpper(strings.TrimSpace(req.EmployeeID))
	if employeeID == "" {
		employeeID = helper.GenerateEmployeeID(time.Now().Year())
	}

	teacher := model.TeacherModel{
		TeacherEmployeeID:     employeeID,
		TeacherProfile:        req.Profile,
		TeacherQualifications: req.Qualifications,
		TeacherEmployment:     req.Employment,
		TeacherSubjects:       pq.StringArray(req.Subjects),
		TeacherStatus:         "active",
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&teacher).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Employee ID already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Teacher created successfully", teacher)
}

/* ===================== UPDATE (partial) ===================== */
// PUT /api/teachers/:id
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req updateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if len(req.Profile) > 0 {
		updates["teacher_profile"] = req.Profile
	}
	if len(req.Qualifications) > 0 {
		updates["teacher_qualifications"] = req.Qualifications
	}
	if len(req.Employment) > 0 {
		updates["teacher_employment"] = req.Employment
	}
	if req.Subjects != nil {
		updates["teacher_subjects"] = pq.StringArray(req.Subjects)
	}
	if req.Status != nil {
		updates["teacher_status"] = *req.Status
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", fiber.Map{"teacher_id": id})
	}

	var updated model.TeacherModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.TeacherModel{}).
		Where("teacher_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	return helper.JsonUpdated(c, "Teacher updated successfully", updated)
}

/* ===================== ASSIGNMENTS ===================== */

type assignSubjectsRequest struct {
	Subjects []string `json:"subjects" validate:"required,dive,max=100"`
}

type assignClassesRequest struct {
	// [{class, section, subjects}]
	Classes datatypes.JSON `json:"classes" validate:"required"`
}

// PUT /api/teachers/:id/assign-subjects — replaces the subject list wholesale
func (ctrl *TeacherController) AssignSubjects(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req assignSubjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var updated model.TeacherModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.TeacherModel{}).
		Where("teacher_id = ?", id).
		Clauses(clause.Returning{}).
		Update("teacher_subjects", pq.StringArray(req.Subjects)).
		Scan(&updated)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	return helper.JsonUpdated(c, "Subjects assigned successfully", updated)
}

// PUT /api/teachers/:id/assign-classes — replaces the class assignments wholesale
func (ctrl *TeacherController) AssignClasses(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req assignClassesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var updated model.TeacherModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.TeacherModel{}).
		Where("teacher_id = ?", id).
		Clauses(clause.Returning{}).
		Update("teacher_classes", req.Classes).
		Scan(&updated)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	return helper.JsonUpdated(c, "Classes assigned successfully", updated)
}

/* ===================== DELETE ===================== */
// DELETE /api/teachers/:id
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ?", id).
		Delete(&model.TeacherModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	return helper.JsonDeleted(c, "Teacher deleted successfully")
}
