package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   JSON responses (success)
=================================*/

// JsonOK: generic success (GET detail etc.)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

// JsonCreated: success for POST (201)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusCreated, message, data)
}

// JsonUpdated: success for PUT/PATCH
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

// JsonDeleted: success for DELETE
func JsonDeleted(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

func jsonSuccess(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
	}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

// JsonList: unpaginated collection with a count.
func JsonList(c *fiber.Ctx, data any, count int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// JsonPage: paginated collection (count, totalPages, currentPage).
func JsonPage(c *fiber.Ctx, data any, total int64, page, limit int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"count":       total,
		"totalPages":  TotalPages(total, limit),
		"currentPage": page,
		"data":        data,
	})
}

/* ===============================
   JSON responses (error)
=================================*/

func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonValidationError maps validator.v10 output onto a 400. Validation
// failures are client input problems, not server faults.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field()+" failed "+fe.Tag())
	}
	return JsonError(c, fiber.StatusBadRequest, "Validation failed: "+strings.Join(fields, ", "))
}

// FromFiberError converts an error bubbling out of a handler or transaction
// (usually *fiber.Error) into the standard envelope. Anything else is a 500
// with the original message.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
