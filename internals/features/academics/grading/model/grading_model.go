package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GradeBand is one row of the grading scale.
type GradeBand struct {
	Name          string   `json:"name"`
	MinPercentage float64  `json:"minPercentage"`
	MaxPercentage float64  `json:"maxPercentage"`
	GradePoint    *float64 `json:"gradePoint,omitempty"`
	Description   string   `json:"description,omitempty"`
}

type GradingSystemModel struct {
	GradingSystemID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grading_system_id" json:"grading_system_id"`

	GradingSystemName string `gorm:"size:100;not null;column:grading_system_name" json:"grading_system_name"`
	// percentage | gpa | letter
	GradingSystemType string `gorm:"size:20;not null;column:grading_system_type" json:"grading_system_type"`

	GradingSystemGrades datatypes.JSON `gorm:"type:jsonb;not null;column:grading_system_grades" json:"grading_system_grades"`

	GradingSystemPassingGrade *string    `gorm:"size:10;column:grading_system_passing_grade" json:"grading_system_passing_grade,omitempty"`
	GradingSystemSessionID    *uuid.UUID `gorm:"type:uuid;column:grading_system_session_id"  json:"grading_system_session_id,omitempty"`

	GradingSystemIsDefault bool `gorm:"not null;default:false;column:grading_system_is_default" json:"grading_system_is_default"`
	GradingSystemIsActive  bool `gorm:"not null;default:true;column:grading_system_is_active"   json:"grading_system_is_active"`

	GradingSystemCreatedAt time.Time      `gorm:"column:grading_system_created_at;autoCreateTime" json:"grading_system_created_at"`
	GradingSystemUpdatedAt time.Time      `gorm:"column:grading_system_updated_at;autoUpdateTime" json:"grading_system_updated_at"`
	GradingSystemDeletedAt gorm.DeletedAt `gorm:"column:grading_system_deleted_at;index"          json:"-"`
}

func (GradingSystemModel) TableName() string { return "grading_systems" }

// Bands decodes the stored grade scale; malformed documents yield an empty scale.
func (g *GradingSystemModel) Bands() []GradeBand {
	if len(g.GradingSystemGrades) == 0 {
		return nil
	}
	var bands []GradeBand
	if err := json.Unmarshal(g.GradingSystemGrades, &bands); err != nil {
		return nil
	}
	return bands
}
