package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SchoolModel holds the single institution profile. The API is
// create-or-update; nothing enforces a single row beyond that.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	SchoolName string `gorm:"size:200;not null;column:school_name" json:"school_name"`

	SchoolAddress  datatypes.JSON `gorm:"type:jsonb;column:school_address"  json:"school_address,omitempty"`
	SchoolContact  datatypes.JSON `gorm:"type:jsonb;column:school_contact"  json:"school_contact,omitempty"`
	SchoolSettings datatypes.JSON `gorm:"type:jsonb;column:school_settings" json:"school_settings,omitempty"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index"          json:"-"`
}

func (SchoolModel) TableName() string { return "schools" }
