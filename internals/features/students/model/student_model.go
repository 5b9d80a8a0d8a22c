package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentAdmissionNumber    string  `gorm:"size:30;not null;uniqueIndex;column:student_admission_number" json:"student_admission_number"`
	StudentRegistrationNumber *string `gorm:"size:30;uniqueIndex;column:student_registration_number"       json:"student_registration_number,omitempty"`
	StudentRollNumber         *string `gorm:"size:20;column:student_roll_number"                           json:"student_roll_number,omitempty"`

	// {firstName, lastName, middleName, dateOfBirth, gender, bloodGroup, photo, email, phone, address}
	StudentProfile datatypes.JSON `gorm:"type:jsonb;not null;column:student_profile" json:"student_profile"`

	// [{relationship, firstName, lastName, occupation, phone, whatsappNumber, email, address, isPrimary}]
	StudentParents datatypes.JSON `gorm:"type:jsonb;column:student_parents" json:"student_parents,omitempty"`

	StudentEmergencyContact datatypes.JSON `gorm:"type:jsonb;column:student_emergency_contact" json:"student_emergency_contact,omitempty"`
	StudentMedical          datatypes.JSON `gorm:"type:jsonb;column:student_medical"           json:"student_medical,omitempty"`

	StudentClassID       *uuid.UUID `gorm:"type:uuid;column:student_class_id;index"   json:"student_class_id,omitempty"`
	StudentSection       *string    `gorm:"size:10;column:student_section"            json:"student_section,omitempty"`
	StudentSessionID     *uuid.UUID `gorm:"type:uuid;column:student_session_id;index" json:"student_session_id,omitempty"`
	StudentAdmissionDate *time.Time `gorm:"type:date;column:student_admission_date"   json:"student_admission_date,omitempty"`

	// pending | approved | rejected
	StudentAdmissionStatus string `gorm:"size:20;not null;default:'pending';column:student_admission_status;index" json:"student_admission_status"`

	// active | inactive | graduated | transferred | suspended
	StudentStatus string `gorm:"size:20;not null;default:'active';column:student_status;index" json:"student_status"`

	// [{status, reason, remarks, changedAt}]
	StudentStatusHistory datatypes.JSON `gorm:"type:jsonb;column:student_status_history" json:"student_status_history,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"          json:"-"`
}

func (StudentModel) TableName() string { return "students" }
