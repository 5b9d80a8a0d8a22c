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

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newTeacherTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctrl := NewTeacherController(nil)
	app := fiber.New()
	app.Put("/teachers/:id/assign-subjects", ctrl.AssignSubjects)
	app.Put("/teachers/:id/assign-classes", ctrl.AssignClasses)
	return app
}

func putJSON(t *testing.T, app *fiber.App, target, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPut, target, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, sonic.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestAssignSubjectsValidation(t *testing.T) {
	app := newTeacherTestApp(t)

	status, env := putJSON(t, app,
		"/teachers/7b0d5a1e-9f1c-4e0a-8f0e-2f4f9f1c1a10/assign-subjects", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, env.Message, "Validation failed")

	status, env = putJSON(t, app, "/teachers/not-a-uuid/assign-subjects",
		`{"subjects": ["Mathematics"]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid ID", env.Message)
}

func TestAssignClassesValidation(t *testing.T) {
	app := newTeacherTestApp(t)

	status, env := putJSON(t, app,
		"/teachers/7b0d5a1e-9f1c-4e0a-8f0e-2f4f9f1c1a10/assign-classes", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, env.Message, "Validation failed")
}
