package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubjectResult is one subject line of a result document.
type SubjectResult struct {
	Subject       string  `json:"subject"`
	MarksObtained float64 `json:"marksObtained"`
	MaxMarks      float64 `json:"maxMarks"`
	Grade         string  `json:"grade,omitempty"`
	Remarks       string  `json:"remarks,omitempty"`
	IsPassed      *bool   `json:"isPassed,omitempty"`
}

type ResultModel struct {
	ResultID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:result_id" json:"result_id"`

	ResultStudentID uuid.UUID `gorm:"type:uuid;not null;column:result_student_id;uniqueIndex:uniq_result_student_exam,priority:1" json:"result_student_id"`
	ResultExamID    uuid.UUID `gorm:"type:uuid;not null;column:result_exam_id;uniqueIndex:uniq_result_student_exam,priority:2"    json:"result_exam_id"`

	ResultClassID   uuid.UUID `gorm:"type:uuid;not null;column:result_class_id;index"   json:"result_class_id"`
	ResultSection   string    `gorm:"size:10;column:result_section"                     json:"result_section,omitempty"`
	ResultSessionID uuid.UUID `gorm:"type:uuid;not null;column:result_session_id;index" json:"result_session_id"`

	ResultSubjects datatypes.JSON `gorm:"type:jsonb;not null;column:result_subjects" json:"result_subjects"`

	// computed from subjects at the write boundary
	ResultTotalMarks    float64 `gorm:"not null;default:0;column:result_total_marks"     json:"result_total_marks"`
	ResultTotalMaxMarks float64 `gorm:"not null;default:0;column:result_total_max_marks" json:"result_total_max_marks"`
	ResultPercentage    float64 `gorm:"not null;default:0;column:result_percentage"      json:"result_percentage"`
	ResultOverallGrade  *string `gorm:"size:10;column:result_overall_grade"              json:"result_overall_grade,omitempty"`

	ResultRank    *int    `gorm:"column:result_rank"    json:"result_rank,omitempty"`
	ResultRemarks *string `gorm:"column:result_remarks" json:"result_remarks,omitempty"`

	ResultEnteredBy   uuid.UUID `gorm:"type:uuid;not null;column:result_entered_by"          json:"result_entered_by"`
	ResultIsPublished bool      `gorm:"not null;default:false;column:result_is_published"    json:"result_is_published"`

	ResultCreatedAt time.Time      `gorm:"column:result_created_at;autoCreateTime" json:"result_created_at"`
	ResultUpdatedAt time.Time      `gorm:"column:result_updated_at;autoUpdateTime" json:"result_updated_at"`
	ResultDeletedAt gorm.DeletedAt `gorm:"column:result_deleted_at;index"          json:"-"`
}

func (ResultModel) TableName() string { return "exam_results" }

// Subjects decodes the stored subject lines; malformed documents yield nil.
func (r *ResultModel) Subjects() []SubjectResult {
	if len(r.ResultSubjects) == 0 {
		return nil
	}
	var out []SubjectResult
	if err := json.Unmarshal(r.ResultSubjects, &out); err != nil {
		return nil
	}
	return out
}
