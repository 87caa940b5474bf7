package handlers

import (
	"errors"

	"giftshop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ValidationError describes a request that is well-formed HTTP but carries
// unusable input. It is rendered as 422 Unprocessable Entity.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// ErrorHandler maps errors returned by handlers to JSON responses of the form
// {"detail": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		verr *ValidationError
		ferr *fiber.Error
	)

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": verr.Message,
			"errors": verr.Fields,
		})
	case errors.Is(err, services.ErrProductUnavailable):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Product not found or not available",
		})
	case errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Product not found",
		})
	case errors.As(err, &ferr):
		return c.Status(ferr.Code).JSON(fiber.Map{
			"detail": ferr.Message,
		})
	}

	logrus.WithError(err).
		WithField("method", c.Method()).
		WithField("path", c.Path()).
		WithField("request_id", c.Locals("requestid")).
		Error("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "Internal server error",
	})
}
