package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/attendance/dto"
	"schoolku_backend/internals/features/attendance/model"
	studentModel "schoolku_backend/internals/features/students/model"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceService struct{}

func NewAttendanceService() *AttendanceService { return &AttendanceService{} }

// MarkBulk inserts a batch one record at a time so a duplicate (student,
// date) pair skips that record without aborting the rest. Any other failure
// aborts; rows already inserted stay inserted, matching unordered bulk
// insert semantics.
func (s *AttendanceService) MarkBulk(db *gorm.DB, records []model.AttendanceModel) (dto.MarkResult, error) {
	result := dto.MarkResult{Inserted: make([]model.AttendanceModel, 0, len(records))}
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				result.Duplicates = append(result.Duplicates, records[i].AttendanceStudentID)
				continue
			}
			return result, err
		}
		result.Inserted = append(result.Inserted, records[i])
	}
	return result, nil
}

// ReportFilter narrows the aggregation; StartDate/EndDate are mandatory.
type ReportFilter struct {
	StartDate time.Time
	EndDate   time.Time
	StudentID uuid.UUID
	ClassID   uuid.UUID
	Section   string
}

// Report groups records by student over the date range and counts per-status
// days. totalDays counts every status, late and leave included; students
// with zero matching records are omitted.
func (s *AttendanceService) Report(db *gorm.DB, f ReportFilter) ([]dto.ReportRow, error) {
	q := db.Model(&model.AttendanceModel{}).
		Select(`attendance_student_id,
			COUNT(*) AS total_days,
			COUNT(*) FILTER (WHERE attendance_status = 'present') AS present,
			COUNT(*) FILTER (WHERE attendance_status = 'absent')  AS absent,
			COUNT(*) FILTER (WHERE attendance_status = 'late')    AS late,
			COUNT(*) FILTER (WHERE attendance_status = 'leave')   AS leave`).
		Where("attendance_date BETWEEN ? AND ?", f.StartDate, f.EndDate).
		Group("attendance_student_id")

	if f.StudentID != uuid.Nil {
		q = q.Where("attendance_student_id = ?", f.StudentID)
	}
	if f.ClassID != uuid.Nil {
		q = q.Where("attendance_class_id = ?", f.ClassID)
	}
	if f.Section != "" {
		q = q.Where("attendance_section = ?", f.Section)
	}

	var rows []dto.ReportRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Percentage = Percentage(rows[i].Present, rows[i].TotalDays)
	}
	return rows, nil
}

// Percentage is present/totalDays*100; zero totalDays yields 0 rather than
// a division by zero.
func Percentage(present, totalDays int64) float64 {
	if totalDays <= 0 {
		return 0
	}
	return float64(present) / float64(totalDays) * 100
}

// DecorateReport is the read-side join: it resolves the grouped student ids
// and merges identity fields into each row.
func (s *AttendanceService) DecorateReport(db *gorm.DB, rows []dto.ReportRow) error {
	if len(rows) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.StudentID)
	}

	type studentRow struct {
		StudentID              uuid.UUID `gorm:"column:student_id"`
		StudentAdmissionNumber string    `gorm:"column:student_admission_number"`
		StudentRollNumber      *string   `gorm:"column:student_roll_number"`
		FirstName              string    `gorm:"column:first_name"`
		LastName               string    `gorm:"column:last_name"`
	}
	var students []studentRow
	if err := db.Model(&studentModel.StudentModel{}).
		Select(`student_id, student_admission_number, student_roll_number,
			student_profile->>'firstName' AS first_name,
			student_profile->>'lastName'  AS last_name`).
		Where("student_id IN ?", ids).
		Scan(&students).Error; err != nil {
		return err
	}

	byID := make(map[uuid.UUID]studentRow, len(students))
	for _, st := range students {
		byID[st.StudentID] = st
	}
	for i := range rows {
		if st, ok := byID[rows[i].StudentID]; ok {
			rows[i].Student = &dto.ReportStudent{
				AdmissionNumber: st.StudentAdmissionNumber,
				RollNumber:      st.StudentRollNumber,
				FirstName:       st.FirstName,
				LastName:        st.LastName,
			}
		}
	}
	return nil
}
