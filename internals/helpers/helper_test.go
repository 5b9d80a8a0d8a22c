package helper

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
	assert.Equal(t, 1, TotalPages(100, 0))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-04-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2026-04-15T18:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/04/2026")
	require.Error(t, err)
}

func TestDayStart(t *testing.T) {
	in := time.Date(2026, 4, 15, 23, 59, 59, 1e8, time.UTC)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), DayStart(in))
}

func TestGeneratedNumberShapes(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^ADM2026\d{6}$`), GenerateAdmissionNumber(2026))
	assert.Regexp(t, regexp.MustCompile(`^REC\d{8}\d{2}$`), GenerateReceiptNumber())
	assert.Regexp(t, regexp.MustCompile(`^EMP2026\d{5}$`), GenerateEmployeeID(2026))
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(&pq.Error{Code: "23505"}))
	assert.True(t, IsDuplicateKey(errors.New(`pq: duplicate key value violates unique constraint "uniq_attendance_student_date"`)))
	assert.False(t, IsDuplicateKey(&pq.Error{Code: "23503"}))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
	assert.False(t, IsDuplicateKey(nil))
}
