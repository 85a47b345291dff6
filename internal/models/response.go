package models

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Total   *int64 `json:"total,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RespondOK writes a 200 success envelope.
func RespondOK(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// RespondCreated writes a 201 success envelope.
func RespondCreated(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// RespondList writes a 200 success envelope with a total item count.
func RespondList(c *fiber.Ctx, data any, total int64, message string) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Data:    data,
		Total:   &total,
		Message: message,
	})
}

// RespondWithError writes a failure envelope with the given status.
// AppError details are included; other errors are surfaced verbatim.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	env := Envelope{Success: false}

	var appErr *AppError
	if errors.As(err, &appErr) {
		env.Message = appErr.Message
		if appErr.Err != nil {
			env.Error = appErr.Err.Error()
		}
	} else {
		env.Message = err.Error()
	}

	return c.Status(status).JSON(env)
}

// RespondError writes a failure envelope, deriving the status from the error.
func RespondError(c *fiber.Ctx, err error) error {
	return RespondWithError(c, StatusFor(err), err)
}
