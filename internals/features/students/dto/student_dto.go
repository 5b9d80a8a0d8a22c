package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schoolku_backend/internals/features/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	AdmissionNumber    string         `json:"admission_number"    validate:"omitempty,max=30"`
	RegistrationNumber *string        `json:"registration_number" validate:"omitempty,max=30"`
	RollNumber         *string        `json:"roll_number"         validate:"omitempty,max=20"`
	Profile            datatypes.JSON `json:"profile"             validate:"required"`
	Parents            datatypes.JSON `json:"parents"             validate:"omitempty"`
	EmergencyContact   datatypes.JSON `json:"emergency_contact"   validate:"omitempty"`
	Medical            datatypes.JSON `json:"medical"             validate:"omitempty"`
	ClassID            *uuid.UUID     `json:"class_id"            validate:"omitempty"`
	Section            *string        `json:"section"             validate:"omitempty,max=10"`
	SessionID          *uuid.UUID     `json:"session_id"          validate:"omitempty"`
	AdmissionDate      *time.Time     `json:"admission_date"      validate:"omitempty"`
}

type UpdateStudentRequest struct {
	RollNumber       *string        `json:"roll_number"       validate:"omitempty,max=20"`
	Profile          datatypes.JSON `json:"profile"           validate:"omitempty"`
	Parents          datatypes.JSON `json:"parents"           validate:"omitempty"`
	EmergencyContact datatypes.JSON `json:"emergency_contact" validate:"omitempty"`
	Medical          datatypes.JSON `json:"medical"           validate:"omitempty"`
	ClassID          *uuid.UUID     `json:"class_id"          validate:"omitempty"`
	Section          *string        `json:"section"           validate:"omitempty,max=10"`
	SessionID        *uuid.UUID     `json:"session_id"        validate:"omitempty"`
}

type UpdateStudentStatusRequest struct {
	Status  string  `json:"status"  validate:"required,oneof=active inactive graduated transferred suspended"`
	Reason  *string `json:"reason"  validate:"omitempty,max=200"`
	Remarks *string `json:"remarks" validate:"omitempty,max=500"`
}

type PromoteStudentsRequest struct {
	StudentIDs []uuid.UUID `json:"studentIds" validate:"required,min=1"`
	ToClass    uuid.UUID   `json:"toClass"    validate:"required"`
	ToSection  string      `json:"toSection"  validate:"required,max=10"`
	ToSession  uuid.UUID   `json:"toSession"  validate:"required"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateStudentRequest) ToModel(admissionNumber string) m.StudentModel {
	return m.StudentModel{
		StudentAdmissionNumber:    strings.ToUpper(strings.TrimSpace(admissionNumber)),
		StudentRegistrationNumber: upperPtr(r.RegistrationNumber),
		StudentRollNumber:         r.RollNumber,
		StudentProfile:            r.Profile,
		StudentParents:            r.Parents,
		StudentEmergencyContact:   r.EmergencyContact,
		StudentMedical:            r.Medical,
		StudentClassID:            r.ClassID,
		StudentSection:            r.Section,
		StudentSessionID:          r.SessionID,
		StudentAdmissionDate:      r.AdmissionDate,
		StudentStatus:             "active",
	}
}

func (r UpdateStudentRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.RollNumber != nil {
		updates["student_roll_number"] = *r.RollNumber
	}
	if len(r.Profile) > 0 {
		updates["student_profile"] = r.Profile
	}
	if len(r.Parents) > 0 {
		updates["student_parents"] = r.Parents
	}
	if len(r.EmergencyContact) > 0 {
		updates["student_emergency_contact"] = r.EmergencyContact
	}
	if len(r.Medical) > 0 {
		updates["student_medical"] = r.Medical
	}
	if r.ClassID != nil {
		updates["student_class_id"] = *r.ClassID
	}
	if r.Section != nil {
		updates["student_section"] = *r.Section
	}
	if r.SessionID != nil {
		updates["student_session_id"] = *r.SessionID
	}
	return updates
}

func upperPtr(s *string) *string {
	if s == nil {
		return nil
	}
	u := strings.ToUpper(strings.TrimSpace(*s))
	return &u
}
