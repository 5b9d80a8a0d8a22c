package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusLeave   = "leave"
	StatusHalfDay = "half_day"
)

// Correction is one entry of the append-only correction history; a status is
// never silently overwritten.
type Correction struct {
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	Reason         string    `json:"reason,omitempty"`
	CorrectedBy    uuid.UUID `json:"correctedBy"`
	CorrectionDate time.Time `json:"correctionDate"`
}

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	// one record per student per calendar day
	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_student_id;uniqueIndex:uniq_attendance_student_date,priority:1" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;column:attendance_date;uniqueIndex:uniq_attendance_student_date,priority:2"       json:"attendance_date"`

	AttendanceClassID uuid.UUID `gorm:"type:uuid;not null;column:attendance_class_id;index" json:"attendance_class_id"`
	AttendanceSection string    `gorm:"size:10;not null;column:attendance_section"          json:"attendance_section"`

	// present | absent | late | leave | half_day
	AttendanceStatus  string  `gorm:"size:20;not null;column:attendance_status;index" json:"attendance_status"`
	AttendanceRemarks *string `gorm:"column:attendance_remarks"                       json:"attendance_remarks,omitempty"`

	AttendanceMarkedBy  uuid.UUID `gorm:"type:uuid;not null;column:attendance_marked_by"        json:"attendance_marked_by"`
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_id;index" json:"attendance_session_id"`

	AttendanceCorrections datatypes.JSON `gorm:"type:jsonb;column:attendance_corrections" json:"attendance_corrections,omitempty"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index"          json:"-"`
}

func (AttendanceModel) TableName() string { return "attendance_records" }

func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusLeave, StatusHalfDay:
		return true
	}
	return false
}

// Corrections decodes the stored history; malformed documents yield nil.
func (a *AttendanceModel) Corrections() []Correction {
	if len(a.AttendanceCorrections) == 0 {
		return nil
	}
	var out []Correction
	if err := json.Unmarshal(a.AttendanceCorrections, &out); err != nil {
		return nil
	}
	return out
}
