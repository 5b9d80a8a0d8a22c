//go:build integration

package service

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/attendance/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AttendanceModel{}))
	return db
}

func seedRecord(student uuid.UUID, date time.Time, status string) model.AttendanceModel {
	return model.AttendanceModel{
		AttendanceStudentID: student,
		AttendanceClassID:   uuid.New(),
		AttendanceSection:   "A",
		AttendanceDate:      date,
		AttendanceStatus:    status,
		AttendanceMarkedBy:  uuid.New(),
		AttendanceSessionID: uuid.New(),
	}
}

func TestMarkBulkSkipsDuplicates(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService()

	date := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	alreadyMarked := uuid.New()
	fresh := uuid.New()
	t.Cleanup(func() {
		db.Unscoped().
			Where("attendance_student_id IN ?", []uuid.UUID{alreadyMarked, fresh}).
			Delete(&model.AttendanceModel{})
	})

	first, err := svc.MarkBulk(db, []model.AttendanceModel{
		seedRecord(alreadyMarked, date, model.StatusPresent),
	})
	require.NoError(t, err)
	require.Len(t, first.Inserted, 1)

	second, err := svc.MarkBulk(db, []model.AttendanceModel{
		seedRecord(alreadyMarked, date, model.StatusAbsent),
		seedRecord(fresh, date, model.StatusPresent),
	})
	require.NoError(t, err)

	assert.Len(t, second.Inserted, 1)
	assert.Equal(t, fresh, second.Inserted[0].AttendanceStudentID)
	require.Len(t, second.Duplicates, 1)
	assert.Equal(t, alreadyMarked, second.Duplicates[0])

	// the original status survives the duplicate attempt
	var kept model.AttendanceModel
	require.NoError(t, db.
		Where("attendance_student_id = ? AND attendance_date = ?", alreadyMarked, date).
		First(&kept).Error)
	assert.Equal(t, model.StatusPresent, kept.AttendanceStatus)
}

func TestReportAggregation(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService()

	student := uuid.New()
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	t.Cleanup(func() {
		db.Unscoped().
			Where("attendance_student_id = ?", student).
			Delete(&model.AttendanceModel{})
	})

	statuses := []string{
		model.StatusPresent, model.StatusPresent, model.StatusPresent,
		model.StatusAbsent, model.StatusLate,
	}
	for i, status := range statuses {
		_, err := svc.MarkBulk(db, []model.AttendanceModel{
			seedRecord(student, base.AddDate(0, 0, i), status),
		})
		require.NoError(t, err)
	}

	rows, err := svc.Report(db, ReportFilter{
		StartDate: base,
		EndDate:   base.AddDate(0, 0, 10),
		StudentID: student,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(5), row.TotalDays)
	assert.Equal(t, int64(3), row.Present)
	assert.Equal(t, int64(1), row.Absent)
	assert.Equal(t, int64(1), row.Late)
	assert.Equal(t, int64(0), row.Leave)
	assert.InDelta(t, 60.0, row.Percentage, 0.001)
}

func TestReportOmitsStudentsWithoutRecords(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService()

	rows, err := svc.Report(db, ReportFilter{
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		StudentID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
