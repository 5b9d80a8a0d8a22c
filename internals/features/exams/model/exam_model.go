package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamModel struct {
	ExamID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_id" json:"exam_id"`

	ExamName string `gorm:"size:150;not null;column:exam_name" json:"exam_name"`
	// unit_test | midterm | final | practical | other
	ExamType string `gorm:"size:30;not null;column:exam_type" json:"exam_type"`

	ExamSessionID uuid.UUID `gorm:"type:uuid;not null;column:exam_session_id;index" json:"exam_session_id"`

	// [{"classId":"...","sections":["A","B"]}]
	ExamClasses datatypes.JSON `gorm:"type:jsonb;column:exam_classes" json:"exam_classes,omitempty"`
	// [{"subject":"...","date":"...","startTime":"...","endTime":"...","maxMarks":100}]
	ExamSchedule datatypes.JSON `gorm:"type:jsonb;column:exam_schedule" json:"exam_schedule,omitempty"`

	ExamGradingSystemID *uuid.UUID `gorm:"type:uuid;column:exam_grading_system_id" json:"exam_grading_system_id,omitempty"`

	ExamStartDate time.Time `gorm:"type:date;not null;column:exam_start_date;index" json:"exam_start_date"`
	ExamEndDate   time.Time `gorm:"type:date;not null;column:exam_end_date"         json:"exam_end_date"`

	ExamIsPublished bool `gorm:"not null;default:false;column:exam_is_published" json:"exam_is_published"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index"          json:"-"`
}

func (ExamModel) TableName() string { return "exams" }
