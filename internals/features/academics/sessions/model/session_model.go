package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicSessionModel struct {
	AcademicSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_session_id" json:"academic_session_id"`

	AcademicSessionName      string    `gorm:"size:100;not null;column:academic_session_name"  json:"academic_session_name"`
	AcademicSessionStartDate time.Time `gorm:"type:date;not null;column:academic_session_start_date" json:"academic_session_start_date"`
	AcademicSessionEndDate   time.Time `gorm:"type:date;not null;column:academic_session_end_date"   json:"academic_session_end_date"`

	// At most one row may be active at a time; the activation service keeps
	// the sweep and the set inside one transaction.
	AcademicSessionIsActive bool `gorm:"not null;default:false;column:academic_session_is_active;index" json:"academic_session_is_active"`
	AcademicSessionIsLocked bool `gorm:"not null;default:false;column:academic_session_is_locked"       json:"academic_session_is_locked"`

	AcademicSessionDescription *string `gorm:"column:academic_session_description" json:"academic_session_description,omitempty"`

	AcademicSessionCreatedAt time.Time      `gorm:"column:academic_session_created_at;autoCreateTime" json:"academic_session_created_at"`
	AcademicSessionUpdatedAt time.Time      `gorm:"column:academic_session_updated_at;autoUpdateTime" json:"academic_session_updated_at"`
	AcademicSessionDeletedAt gorm.DeletedAt `gorm:"column:academic_session_deleted_at;index"          json:"-"`
}

func (AcademicSessionModel) TableName() string { return "academic_sessions" }
