package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gradingModel "schoolku_backend/internals/features/academics/grading/model"
	"schoolku_backend/internals/features/exams/model"
)

func TestComputeTotals(t *testing.T) {
	subjects := []model.SubjectResult{
		{Subject: "Mathematics", MarksObtained: 90, MaxMarks: 100},
		{Subject: "Science", MarksObtained: 85, MaxMarks: 100},
		{Subject: "English", MarksObtained: 75, MaxMarks: 100},
	}

	totals, err := ComputeTotals(subjects)
	require.NoError(t, err)
	assert.Equal(t, 250.0, totals.TotalMarks)
	assert.Equal(t, 300.0, totals.TotalMaxMarks)
	assert.InDelta(t, 83.33, totals.Percentage, 0.01)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals, err := ComputeTotals(nil)
	require.NoError(t, err)
	assert.Zero(t, totals.TotalMarks)
	assert.Zero(t, totals.Percentage)
}

func TestComputeTotalsRejectsNonPositiveMaxMarks(t *testing.T) {
	subjects := []model.SubjectResult{
		{Subject: "Mathematics", MarksObtained: 0, MaxMarks: 0},
	}

	_, err := ComputeTotals(subjects)
	require.Error(t, err)

	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestGradeSubjects(t *testing.T) {
	bands := []gradingModel.GradeBand{
		{Name: "A", MinPercentage: 80, MaxPercentage: 100},
		{Name: "B", MinPercentage: 60, MaxPercentage: 79.99},
		{Name: "C", MinPercentage: 0, MaxPercentage: 59.99},
	}
	subjects := []model.SubjectResult{
		{Subject: "Mathematics", MarksObtained: 90, MaxMarks: 100},
		{Subject: "Science", MarksObtained: 65, MaxMarks: 100},
		{Subject: "Practical", MarksObtained: 10, MaxMarks: 0}, // stays ungraded
	}

	GradeSubjects(bands, subjects)

	assert.Equal(t, "A", subjects[0].Grade)
	assert.Equal(t, "B", subjects[1].Grade)
	assert.Empty(t, subjects[2].Grade)
}
