package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newAttendanceTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctrl := NewAttendanceController(nil)
	app := fiber.New()
	app.Get("/attendance", ctrl.GetAttendance)
	app.Get("/attendance/report", ctrl.GetAttendanceReport)
	app.Post("/attendance", ctrl.MarkAttendance)
	app.Put("/attendance/:id", ctrl.CorrectAttendance)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, errEnvelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env errEnvelope
	require.NoError(t, sonic.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestGetAttendanceQueryParamNames(t *testing.T) {
	app := newAttendanceTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/attendance?studentId=not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid studentId", env.Message)

	status, env = doJSON(t, app, fiber.MethodGet, "/attendance?classId=not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid classId", env.Message)
}

func TestGetAttendanceReportQueryParamNames(t *testing.T) {
	app := newAttendanceTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/attendance/report", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "startDate and endDate are required", env.Message)

	status, env = doJSON(t, app, fiber.MethodGet,
		"/attendance/report?startDate=2026-04-01&endDate=2026-04-30&studentId=nope", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid studentId", env.Message)

	status, env = doJSON(t, app, fiber.MethodGet,
		"/attendance/report?startDate=2026-04-01&endDate=2026-04-30&classId=nope", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid classId", env.Message)
}

func TestMarkAttendanceRejectsUnknownStatus(t *testing.T) {
	app := newAttendanceTestApp(t)

	body := `{
		"attendanceRecords": [{"student": "7b0d5a1e-9f1c-4e0a-8f0e-2f4f9f1c1a10", "status": "sleeping"}],
		"classId": "1f6f3f9a-0b1c-4d2e-9a3b-5c6d7e8f9a0b",
		"section": "A",
		"date": "2026-04-15",
		"session": "2a1b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	}`
	status, env := doJSON(t, app, fiber.MethodPost, "/attendance", body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid attendance status: sleeping", env.Message)
}

func TestCorrectAttendanceRejectsUnknownStatus(t *testing.T) {
	app := newAttendanceTestApp(t)

	status, env := doJSON(t, app, fiber.MethodPut,
		"/attendance/7b0d5a1e-9f1c-4e0a-8f0e-2f4f9f1c1a10",
		`{"status": "vacation", "reason": "typo"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid attendance status: vacation", env.Message)
}
