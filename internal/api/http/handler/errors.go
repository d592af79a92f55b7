package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	pkgerrors "github.com/pkg/errors"
)

const fallbackMessage = "Something went wrong, please try again later."

// NotFound is registered after every route and turns unmatched requests
// into a 404 for ErrorHandler.
func NotFound(c fiber.Ctx) error {
	c.Status(fiber.StatusNotFound)
	return pkgerrors.New("Not Found - " + c.OriginalURL())
}

// ErrorHandler is the terminal fiber error handler. Stack traces are
// rendered unless exposeStack is false.
func ErrorHandler(log *slog.Logger, exposeStack bool) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		status := statusFor(c, err)

		trace := fmt.Sprintf("%+v", err)
		log.ErrorContext(c.Context(), "request failed",
			"message", err.Error(),
			"stack", trace,
			"status", status,
			"method", c.Method(),
			"path", c.OriginalURL(),
		)

		msg := err.Error()
		if msg == "" {
			msg = fallbackMessage
		}

		resp := errorEnvelope{Message: msg}
		if exposeStack {
			resp.Stack = &trace
		}

		return c.Status(status).JSON(resp)
	}
}

// statusFor prefers an explicit fiber error code, then a status set by the
// handler before failing, then 500.
func statusFor(c fiber.Ctx, err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	if s := c.Response().StatusCode(); s != fiber.StatusOK {
		return s
	}
	return fiber.StatusInternalServerError
}
