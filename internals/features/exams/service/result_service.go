package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingModel "schoolku_backend/internals/features/academics/grading/model"
	gradingService "schoolku_backend/internals/features/academics/grading/service"
	"schoolku_backend/internals/features/exams/model"
)

// Totals is the computed summary of a result's subject lines.
type Totals struct {
	TotalMarks    float64
	TotalMaxMarks float64
	Percentage    float64
}

// ComputeTotals sums the subject lines. A max-marks total of zero or less is
// a client input error, never something to persist or divide by.
func ComputeTotals(subjects []model.SubjectResult) (Totals, error) {
	var t Totals
	if len(subjects) == 0 {
		return t, nil
	}
	for _, s := range subjects {
		t.TotalMarks += s.MarksObtained
		t.TotalMaxMarks += s.MaxMarks
	}
	if t.TotalMaxMarks <= 0 {
		return Totals{}, fiber.NewError(fiber.StatusBadRequest, "subject max marks must be positive")
	}
	t.Percentage = t.TotalMarks / t.TotalMaxMarks * 100
	return t, nil
}

// GradeSubjects fills each line's grade from the scale; lines stay ungraded
// when no band matches.
func GradeSubjects(bands []gradingModel.GradeBand, subjects []model.SubjectResult) {
	if len(bands) == 0 {
		return
	}
	for i := range subjects {
		if subjects[i].MaxMarks <= 0 {
			continue
		}
		pct := subjects[i].MarksObtained / subjects[i].MaxMarks * 100
		if band := gradingService.GradeFor(bands, pct); band != nil {
			subjects[i].Grade = band.Name
		}
	}
}

// OverallGrade resolves the overall grade from the exam's grading system.
// Exams without a grading system, or percentages outside every band, resolve
// to nil.
func OverallGrade(db *gorm.DB, exam *model.ExamModel, percentage float64) (*string, []gradingModel.GradeBand, error) {
	if exam == nil || exam.ExamGradingSystemID == nil {
		return nil, nil, nil
	}
	var gs gradingModel.GradingSystemModel
	if err := db.First(&gs, "grading_system_id = ?", *exam.ExamGradingSystemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	bands := gs.Bands()
	if band := gradingService.GradeFor(bands, percentage); band != nil {
		name := band.Name
		return &name, bands, nil
	}
	return nil, bands, nil
}
