package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schoolku_backend/internals/features/exams/model"
)

/* =========================================================
 * EXAM REQUESTS
 * ========================================================= */

type CreateExamRequest struct {
	Name            string         `json:"name"            validate:"required,max=150"`
	Type            string         `json:"type"            validate:"required,oneof=unit_test midterm final practical other"`
	SessionID       uuid.UUID      `json:"session_id"      validate:"required,uuid4"`
	Classes         datatypes.JSON `json:"classes"         validate:"omitempty"`
	Schedule        datatypes.JSON `json:"schedule"        validate:"omitempty"`
	GradingSystemID *uuid.UUID     `json:"grading_system_id" validate:"omitempty,uuid4"`
	StartDate       string         `json:"start_date"      validate:"required"`
	EndDate         string         `json:"end_date"        validate:"required"`
}

type UpdateExamRequest struct {
	Name            *string        `json:"name"            validate:"omitempty,max=150"`
	Type            *string        `json:"type"            validate:"omitempty,oneof=unit_test midterm final practical other"`
	Classes         datatypes.JSON `json:"classes"         validate:"omitempty"`
	Schedule        datatypes.JSON `json:"schedule"        validate:"omitempty"`
	GradingSystemID *uuid.UUID     `json:"grading_system_id" validate:"omitempty,uuid4"`
	StartDate       *string        `json:"start_date"      validate:"omitempty"`
	EndDate         *string        `json:"end_date"        validate:"omitempty"`
}

/* =========================================================
 * RESULT REQUESTS
 * ========================================================= */

type SubjectResultInput struct {
	Subject       string  `json:"subject"       validate:"required,max=100"`
	MarksObtained float64 `json:"marksObtained" validate:"min=0"`
	MaxMarks      float64 `json:"maxMarks"      validate:"min=0"`
	Remarks       string  `json:"remarks"       validate:"omitempty,max=500"`
}

type CreateResultRequest struct {
	StudentID uuid.UUID            `json:"student_id" validate:"required,uuid4"`
	ExamID    uuid.UUID            `json:"exam_id"    validate:"required,uuid4"`
	ClassID   uuid.UUID            `json:"class_id"   validate:"required,uuid4"`
	Section   string               `json:"section"    validate:"omitempty,max=10"`
	SessionID uuid.UUID            `json:"session_id" validate:"required,uuid4"`
	Subjects  []SubjectResultInput `json:"subjects"   validate:"required,min=1,dive"`
	Rank      *int                 `json:"rank"       validate:"omitempty,min=1"`
	Remarks   *string              `json:"remarks"    validate:"omitempty,max=1000"`
}

type UpdateResultRequest struct {
	Subjects []SubjectResultInput `json:"subjects" validate:"omitempty,min=1,dive"`
	Rank     *int                 `json:"rank"     validate:"omitempty,min=1"`
	Remarks  *string              `json:"remarks"  validate:"omitempty,max=1000"`
}

// PublishResultsRequest targets an exam, optionally narrowed to one class
// and section.
type PublishResultsRequest struct {
	ExamID  uuid.UUID  `json:"examId"  validate:"required,uuid4"`
	ClassID *uuid.UUID `json:"classId" validate:"omitempty,uuid4"`
	Section *string    `json:"section" validate:"omitempty,max=10"`
}

func (r CreateResultRequest) SubjectLines() []m.SubjectResult {
	out := make([]m.SubjectResult, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		out = append(out, m.SubjectResult{
			Subject:       s.Subject,
			MarksObtained: s.MarksObtained,
			MaxMarks:      s.MaxMarks,
			Remarks:       s.Remarks,
		})
	}
	return out
}

func (r UpdateResultRequest) SubjectLines() []m.SubjectResult {
	out := make([]m.SubjectResult, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		out = append(out, m.SubjectResult{
			Subject:       s.Subject,
			MarksObtained: s.MarksObtained,
			MaxMarks:      s.MaxMarks,
			Remarks:       s.Remarks,
		})
	}
	return out
}
