package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type MarkAttendanceEntry struct {
	Student uuid.UUID `json:"student" validate:"required"`
	// checked against the closed status set in the controller
	Status  string  `json:"status"  validate:"required"`
	Remarks *string `json:"remarks" validate:"omitempty,max=500"`
}

type MarkAttendanceRequest struct {
	AttendanceRecords []MarkAttendanceEntry `json:"attendanceRecords" validate:"required,min=1,dive"`
	ClassID           uuid.UUID             `json:"classId"           validate:"required"`
	Section           string                `json:"section"           validate:"required,max=10"`
	Date              string                `json:"date"              validate:"required"`
	Session           uuid.UUID             `json:"session"           validate:"required"`
}

type CorrectAttendanceRequest struct {
	Status  string  `json:"status"  validate:"required"`
	Reason  string  `json:"reason"  validate:"omitempty,max=500"`
	Remarks *string `json:"remarks" validate:"omitempty,max=500"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// ReportRow is one grouped row of the attendance report, decorated with
// student identity by the assembler.
type ReportRow struct {
	StudentID uuid.UUID `gorm:"column:attendance_student_id" json:"student_id"`
	TotalDays int64     `gorm:"column:total_days"            json:"totalDays"`
	Present   int64     `gorm:"column:present"               json:"present"`
	Absent    int64     `gorm:"column:absent"                json:"absent"`
	Late      int64     `gorm:"column:late"                  json:"late"`
	Leave     int64     `gorm:"column:leave"                 json:"leave"`
	Percentage float64  `gorm:"-"                            json:"percentage"`

	Student *ReportStudent `gorm:"-" json:"student,omitempty"`
}

type ReportStudent struct {
	AdmissionNumber string  `json:"admission_number"`
	RollNumber      *string `json:"roll_number,omitempty"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
}

// MarkResult reports best-effort bulk insertion: duplicates do not abort the
// rest of the batch.
type MarkResult struct {
	Inserted   []m.AttendanceModel `json:"inserted"`
	Duplicates []uuid.UUID         `json:"duplicates,omitempty"`
}

func (r MarkAttendanceRequest) ToModels(date time.Time, markedBy uuid.UUID) []m.AttendanceModel {
	out := make([]m.AttendanceModel, 0, len(r.AttendanceRecords))
	for _, entry := range r.AttendanceRecords {
		out = append(out, m.AttendanceModel{
			AttendanceStudentID: entry.Student,
			AttendanceClassID:   r.ClassID,
			AttendanceSection:   r.Section,
			AttendanceDate:      date,
			AttendanceStatus:    entry.Status,
			AttendanceRemarks:   entry.Remarks,
			AttendanceMarkedBy:  markedBy,
			AttendanceSessionID: r.Session,
		})
	}
	return out
}
