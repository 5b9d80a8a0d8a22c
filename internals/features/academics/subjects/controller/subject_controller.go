package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/academics/subjects/dto"
	"schoolku_backend/internals/features/academics/subjects/model"
	helper "schoolku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/academic/subjects?session=&classId=
func (ctrl *SubjectController) GetSubjects(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDQuery(c, "session")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParseUUIDQuery(c, "classId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SubjectModel{})
	if sessionID != uuid.Nil {
		q = q.Where("subject_session_id = ?", sessionID)
	}
	if classID != uuid.Nil {
		// match inside the classes JSONB document
		q = q.Where("subject_classes @> ?", `[{"classId":"`+classID.String()+`"}]`)
	}

	var subjects []model.SubjectModel
	if err := q.Order("subject_code ASC").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.NewSubjectResponses(subjects))
}

/* ===================== CREATE ===================== */
// POST /api/academic/subjects
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	subject := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&subject).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Subject code already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Subject created successfully", dto.NewSubjectResponse(subject))
}

/* ===================== UPDATE (partial) ===================== */
// PUT /api/academic/subjects/:id
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", fiber.Map{"subject_id": id})
	}

	var updated model.SubjectModel
	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SubjectModel{}).
		Where("subject_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	return helper.JsonUpdated(c, "Subject updated successfully", dto.NewSubjectResponse(updated))
}
