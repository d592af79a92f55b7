package handler

import "github.com/gofiber/fiber/v3"

// envelope is the JSON shape of every response.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// errorEnvelope is written by ErrorHandler; stack is always present and
// null when suppressed.
type errorEnvelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Stack   *string `json:"stack"`
}

func ok(c fiber.Ctx, msg string, data any) error {
	return c.Status(fiber.StatusOK).JSON(envelope{Success: true, Message: msg, Data: data})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(envelope{Message: msg})
}

func validationFailed(c fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(envelope{Message: "Validation failed", Errors: errs})
}
