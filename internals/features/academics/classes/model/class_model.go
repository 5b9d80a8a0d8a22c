package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	ClassName  string `gorm:"size:100;not null;column:class_name;uniqueIndex:uniq_class_name_session,priority:1" json:"class_name"`
	ClassLevel int    `gorm:"not null;column:class_level;index" json:"class_level"`

	// [{name, capacity, classTeacher, room, isActive}]
	ClassSections datatypes.JSON `gorm:"type:jsonb;column:class_sections" json:"class_sections,omitempty"`

	ClassSessionID uuid.UUID `gorm:"type:uuid;not null;column:class_session_id;uniqueIndex:uniq_class_name_session,priority:2" json:"class_session_id"`

	ClassIsActive bool `gorm:"not null;default:true;column:class_is_active" json:"class_is_active"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index"          json:"-"`
}

func (ClassModel) TableName() string { return "classes" }
