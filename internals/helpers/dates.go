package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns the value truncated to
// midnight UTC. 400 on anything else.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return DayStart(t), nil
	}
	return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date: "+raw)
}

// DayStart truncates a timestamp to midnight UTC.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
