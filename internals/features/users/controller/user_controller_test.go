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

func TestLogoutClearsCookie(t *testing.T) {
	ctrl := NewAuthController(nil)
	app := fiber.New()
	app.Post("/auth/logout", ctrl.Logout)

	req := httptest.NewRequest(fiber.MethodPost, "/auth/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, sonic.Unmarshal(raw, &env))
	assert.True(t, env.Success)
	assert.Equal(t, "Logged out successfully", env.Message)

	cookie := resp.Header.Get("Set-Cookie")
	assert.Contains(t, cookie, "access_token=")
	assert.Contains(t, cookie, "expires=")
}

func TestUpdatePasswordRequiresLogin(t *testing.T) {
	ctrl := NewAuthController(nil)
	app := fiber.New()
	app.Put("/auth/update-password", ctrl.UpdatePassword)

	req := httptest.NewRequest(fiber.MethodPut, "/auth/update-password",
		strings.NewReader(`{"currentPassword": "old-secret", "newPassword": "new-secret"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, sonic.Unmarshal(raw, &env))
	assert.Equal(t, "Not logged in", env.Message)
}

func TestToggleUserStatusRejectsSelf(t *testing.T) {
	ctrl := NewAuthController(nil)
	app := fiber.New()
	selfID := "7b0d5a1e-9f1c-4e0a-8f0e-2f4f9f1c1a10"
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", selfID)
		return c.Next()
	})
	app.Put("/users/:id/toggle-status", ctrl.ToggleUserStatus)
	app.Delete("/users/:id", ctrl.DeleteUser)

	req := httptest.NewRequest(fiber.MethodPut, "/users/"+selfID+"/toggle-status", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, sonic.Unmarshal(raw, &env))
	assert.Equal(t, "You cannot deactivate your own account", env.Message)

	req = httptest.NewRequest(fiber.MethodDelete, "/users/"+selfID, nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, sonic.Unmarshal(raw, &env))
	assert.Equal(t, "You cannot delete your own account", env.Message)
}
