package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 80.0, Percentage(8, 10), 0.001)
	assert.InDelta(t, 66.666, Percentage(2, 3), 0.001)
	assert.Equal(t, 100.0, Percentage(5, 5))
	assert.Equal(t, 0.0, Percentage(0, 10))
}

func TestPercentageZeroDays(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(3, 0))
}
