package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formatValidationErrors turns validator errors into a field -> message map.
func formatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["body"] = err.Error()
		return messages
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages[field] = field + " is required"
		case "gte":
			messages[field] = field + " must be greater than or equal to " + e.Param()
		default:
			messages[field] = fmt.Sprintf("Field '%s' failed on the '%s' tag", field, e.Tag())
		}
	}
	return messages
}

// parseBody decodes the JSON body into out and validates it.
func parseBody(c *fiber.Ctx, validate *validator.Validate, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return newValidationError("Invalid request body", map[string]string{"body": err.Error()})
	}
	if err := validate.Struct(out); err != nil {
		return newValidationError("Validation failed", formatValidationErrors(err))
	}
	return nil
}

// paramID reads the integer :id path parameter.
func paramID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, newValidationError("Validation failed", map[string]string{
			"id": fmt.Sprintf("id must be an integer, got %q", raw),
		})
	}
	return id, nil
}

// queryBool reads a boolean query parameter, returning def when it is absent.
func queryBool(c *fiber.Ctx, key string, def bool) (bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}

	switch strings.ToLower(raw) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, newValidationError("Validation failed", map[string]string{
		key: fmt.Sprintf("%s must be a boolean, got %q", key, raw),
	})
}
