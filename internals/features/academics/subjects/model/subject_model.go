package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	SubjectCode string `gorm:"size:20;not null;uniqueIndex;column:subject_code" json:"subject_code"`
	SubjectName string `gorm:"size:100;not null;column:subject_name"            json:"subject_name"`

	// theory | practical | elective
	SubjectType string `gorm:"size:20;not null;default:'theory';column:subject_type" json:"subject_type"`
	// core | optional
	SubjectPriority string `gorm:"size:20;not null;default:'core';column:subject_priority" json:"subject_priority"`

	// [{classId, sections:[...], teacher, maxMarks, passingMarks}]
	SubjectClasses datatypes.JSON `gorm:"type:jsonb;column:subject_classes" json:"subject_classes,omitempty"`

	SubjectSessionID uuid.UUID `gorm:"type:uuid;not null;column:subject_session_id;index" json:"subject_session_id"`

	SubjectIsActive bool `gorm:"not null;default:true;column:subject_is_active" json:"subject_is_active"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index"          json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }
