package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/students/dto"
	"schoolku_backend/internals/features/students/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/students?status=&class=&section=&session=&search=&page=&limit=
func (ctrl *StudentController) GetStudents(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDQuery(c, "class")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	sessionID, err := helper.ParseUUIDQuery(c, "session")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 10, 200)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if classID != uuid.Nil {
		q = q.Where("student_class_id = ?", classID)
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("student_section = ?", section)
	}
	if sessionID != uuid.Nil {
		q = q.Where("student_session_id = ?", sessionID)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			ctrl.DB.Where("student_profile->>'firstName' ILIKE ?", like).
				Or("student_profile->>'lastName' ILIKE ?", like).
				Or("student_admission_number ILIKE ?", like).
				Or("student_roll_number ILIKE ?", like),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var students []model.StudentModel
	if err := q.
		Order("student_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonPage(c, students, total, paging.Page, paging.Limit)
}

/* ===================== DETAIL ===================== */
// GET /api/students/:id
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", student)
}

/* ===================== CREATE ===================== */
// POST /api/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	admissionNumber := req.AdmissionNumber
	if admissionNumber == "" {
		admissionNumber = helper.GenerateAdmissionNumber(time.Now().Year())
	}

	student := req.ToModel(admissionNumber)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Admission or registration number already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Student created successfully", student)
}

/* ===================== UPDATE (partial) ===================== */
// PUT /api/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", fiber.Map{"student_id": id})
	}

	var updated model.StudentModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonUpdated(c, "Student updated successfully", updated)
}

/* ===================== DELETE ===================== */
// DELETE /api/students/:id
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student deleted successfully")
}

/* ===================== STATUS ===================== */
// PUT /api/students/:id/status
func (ctrl *StudentController) UpdateStudentStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateStudentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var updated model.StudentModel
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var student model.StudentModel
		if err := tx.Where("student_id = ?", id).First(&student).Error; err != nil {
			return err
		}

		// the prior status goes into the history, not the new one
		history := decodeHistory(student.StudentStatusHistory)
		history = append(history, map[string]any{
			"status":    student.StudentStatus,
			"reason":    req.Reason,
			"remarks":   req.Remarks,
			"changedAt": time.Now().UTC(),
		})
		raw, err := json.Marshal(history)
		if err != nil {
			return err
		}

		return tx.Model(&model.StudentModel{}).
			Where("student_id = ?", id).
			Clauses(clause.Returning{}).
			Updates(map[string]any{
				"student_status":         req.Status,
				"student_status_history": datatypes.JSON(raw),
			}).
			Scan(&updated).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Student status updated successfully", updated)
}

/* ===================== ADMISSION ===================== */
// PUT /api/students/:id/approve
func (ctrl *StudentController) ApproveAdmission(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var updated model.StudentModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(map[string]any{
			"student_admission_status": "approved",
			"student_status":           "active",
		}).
		Scan(&updated)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonUpdated(c, "Admission approved successfully", updated)
}

/* ===================== PROMOTE (BULK) ===================== */
// POST /api/students/promote
func (ctrl *StudentController) PromoteStudents(c *fiber.Ctx) error {
	var req dto.PromoteStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).
		Where("student_id IN ?", req.StudentIDs).
		Updates(map[string]any{
			"student_class_id":   req.ToClass,
			"student_section":    req.ToSection,
			"student_session_id": req.ToSession,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}

	return helper.JsonOK(c,
		fmt.Sprintf("%d students promoted successfully", res.RowsAffected),
		fiber.Map{"promoted": res.RowsAffected})
}

func decodeHistory(raw datatypes.JSON) []map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var history []map[string]any
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil
	}
	return history
}
