package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`

	TeacherEmployeeID string `gorm:"size:30;not null;uniqueIndex;column:teacher_employee_id" json:"teacher_employee_id"`

	TeacherProfile        datatypes.JSON `gorm:"type:jsonb;not null;column:teacher_profile"   json:"teacher_profile"`
	TeacherQualifications datatypes.JSON `gorm:"type:jsonb;column:teacher_qualifications"     json:"teacher_qualifications,omitempty"`
	TeacherEmployment     datatypes.JSON `gorm:"type:jsonb;column:teacher_employment"         json:"teacher_employment,omitempty"`

	TeacherSubjects pq.StringArray `gorm:"type:text[];column:teacher_subjects" json:"teacher_subjects,omitempty"`

	// [{class, section, subjects}]
	TeacherClasses datatypes.JSON `gorm:"type:jsonb;column:teacher_classes" json:"teacher_classes,omitempty"`

	// active | inactive | on_leave | resigned
	TeacherStatus string `gorm:"size:20;not null;default:'active';column:teacher_status;index" json:"teacher_status"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index"          json:"-"`
}

func (TeacherModel) TableName() string { return "teachers" }
