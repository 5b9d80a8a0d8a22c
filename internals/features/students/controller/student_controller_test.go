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

func newStudentTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctrl := NewStudentController(nil)
	app := fiber.New()
	app.Post("/students/promote", ctrl.PromoteStudents)
	app.Put("/students/:id/approve", ctrl.ApproveAdmission)
	return app
}

func TestPromoteStudentsValidation(t *testing.T) {
	app := newStudentTestApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty student list", `{"studentIds": [], "toClass": "1f6f3f9a-0b1c-4d2e-9a3b-5c6d7e8f9a0b", "toSection": "B", "toSession": "2a1b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"}`},
		{"missing target class", `{"studentIds": ["7b0d5a1e-9f1c-4e0a-8f0e-2f4f9f1c1a10"], "toSection": "B", "toSession": "2a1b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"}`},
		{"missing target section", `{"studentIds": ["7b0d5a1e-9f1c-4e0a-8f0e-2f4f9f1c1a10"], "toClass": "1f6f3f9a-0b1c-4d2e-9a3b-5c6d7e8f9a0b", "toSession": "2a1b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/students/promote", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var env envelope
			require.NoError(t, sonic.Unmarshal(raw, &env))
			assert.False(t, env.Success)
			assert.Contains(t, env.Message, "Validation failed")
		})
	}
}

func TestApproveAdmissionRejectsMalformedID(t *testing.T) {
	app := newStudentTestApp(t)

	req := httptest.NewRequest(fiber.MethodPut, "/students/not-a-uuid/approve", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, sonic.Unmarshal(raw, &env))
	assert.Equal(t, "Invalid ID", env.Message)
}
