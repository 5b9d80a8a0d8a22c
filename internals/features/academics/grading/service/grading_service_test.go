package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/academics/grading/model"
)

func TestGradeFor(t *testing.T) {
	bands := []model.GradeBand{
		{Name: "A+", MinPercentage: 90, MaxPercentage: 100},
		{Name: "A", MinPercentage: 80, MaxPercentage: 89.99},
		{Name: "B", MinPercentage: 60, MaxPercentage: 79.99},
		{Name: "F", MinPercentage: 0, MaxPercentage: 59.99},
	}

	tests := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{83.33, "A"},
		{60, "B"},
		{0, "F"},
	}
	for _, tt := range tests {
		band := GradeFor(bands, tt.percentage)
		require.NotNil(t, band, "percentage %v", tt.percentage)
		assert.Equal(t, tt.want, band.Name)
	}
}

func TestGradeForOutsideEveryBand(t *testing.T) {
	bands := []model.GradeBand{
		{Name: "A", MinPercentage: 50, MaxPercentage: 100},
	}
	assert.Nil(t, GradeFor(bands, 49.9))
	assert.Nil(t, GradeFor(nil, 80))
}
