package middleware

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Govt-of-India/mla-portal/internal/logger"
)

// FieldError identifies one invalid payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator wraps the validator instance with JSON field naming, so error
// details reference the wire names clients actually sent.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Check validates s and returns the field-level details of every violation.
// A nil return means the payload is valid.
func (v *Validator) Check(s interface{}) []FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{Field: fe.Field(), Message: fe.Tag()})
	}
	return details
}

// ValidationResponse writes the 400 body for invalid input: a field-level
// detail list, always caller-correctable, never fatal.
func ValidationResponse(c *fiber.Ctx, details []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Invalid input",
		"details": details,
	})
}

// ErrorHandler is the fiber application error handler: every error that
// escapes a handler is logged and converted to a structured JSON response.
// Nothing reaches the client as an unhandled exception.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Get().Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", code).
		Msg("HTTP error")

	return c.Status(code).JSON(fiber.Map{
		"error": http.StatusText(code),
	})
}
