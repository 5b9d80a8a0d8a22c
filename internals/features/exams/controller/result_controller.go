package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/exams/dto"
	"schoolku_backend/internals/features/exams/model"
	"schoolku_backend/internals/features/exams/service"
	helper "schoolku_backend/internals/helpers"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/exams/results?examId=&studentId=&classId=&section=
func (ctrl *ResultController) GetResults(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDQuery(c, "examId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := helper.ParseUUIDQuery(c, "studentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParseUUIDQuery(c, "classId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ResultModel{})
	if examID != uuid.Nil {
		q = q.Where("result_exam_id = ?", examID)
	}
	if studentID != uuid.Nil {
		q = q.Where("result_student_id = ?", studentID)
	}
	if classID != uuid.Nil {
		q = q.Where("result_class_id = ?", classID)
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("result_section = ?", section)
	}

	var results []model.ResultModel
	if err := q.Order("result_rank ASC NULLS LAST").Find(&results).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, results, len(results))
}

/* ===================== CREATE ===================== */
// POST /api/exams/results
func (ctrl *ResultController) CreateResult(c *fiber.Ctx) error {
	var req dto.CreateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	enteredBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	subjects := req.SubjectLines()
	totals, err := service.ComputeTotals(subjects)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var exam model.ExamModel
	if err := db.First(&exam, "exam_id = ?", req.ExamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	overall, bands, err := service.OverallGrade(db, &exam, totals.Percentage)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	service.GradeSubjects(bands, subjects)

	raw, err := json.Marshal(subjects)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	result := model.ResultModel{
		ResultStudentID:     req.StudentID,
		ResultExamID:        req.ExamID,
		ResultClassID:       req.ClassID,
		ResultSection:       req.Section,
		ResultSessionID:     req.SessionID,
		ResultSubjects:      raw,
		ResultTotalMarks:    totals.TotalMarks,
		ResultTotalMaxMarks: totals.TotalMaxMarks,
		ResultPercentage:    totals.Percentage,
		ResultOverallGrade:  overall,
		ResultRank:          req.Rank,
		ResultRemarks:       req.Remarks,
		ResultEnteredBy:     enteredBy,
	}
	if err := db.Create(&result).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Result already exists for this student and exam")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Result created successfully", result)
}

/* ===================== UPDATE ===================== */
// PUT /api/exams/results/:id
func (ctrl *ResultController) UpdateResult(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var result model.ResultModel
	if err := db.First(&result, "result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if len(req.Subjects) > 0 {
		subjects := req.SubjectLines()
		totals, err := service.ComputeTotals(subjects)
		if err != nil {
			return helper.FromFiberError(c, err)
		}

		var exam model.ExamModel
		if err := db.First(&exam, "exam_id = ?", result.ResultExamID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		overall, bands, err := service.OverallGrade(db, &exam, totals.Percentage)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		service.GradeSubjects(bands, subjects)

		raw, err := json.Marshal(subjects)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}

		updates["result_subjects"] = raw
		updates["result_total_marks"] = totals.TotalMarks
		updates["result_total_max_marks"] = totals.TotalMaxMarks
		updates["result_percentage"] = totals.Percentage
		updates["result_overall_grade"] = overall
	}
	if req.Rank != nil {
		updates["result_rank"] = *req.Rank
	}
	if req.Remarks != nil {
		updates["result_remarks"] = *req.Remarks
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := db.Model(&result).
		Clauses(clause.Returning{}).
		Where("result_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Result updated successfully", result)
}

/* ===================== PUBLISH (BULK) ===================== */
// PUT /api/exams/results/publish
func (ctrl *ResultController) PublishResults(c *fiber.Ctx) error {
	var req dto.PublishResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ResultModel{}).
		Where("result_exam_id = ?", req.ExamID)
	if req.ClassID != nil {
		q = q.Where("result_class_id = ?", *req.ClassID)
	}
	if req.Section != nil && *req.Section != "" {
		q = q.Where("result_section = ?", *req.Section)
	}

	res := q.Update("result_is_published", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}

	return helper.JsonUpdated(c,
		fmt.Sprintf("%d results published successfully", res.RowsAffected), nil)
}
