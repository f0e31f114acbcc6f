package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidationError carries field-level failures up to the app error handler,
// which renders them as the standard 400 envelope.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ValidateStruct runs validator.v10 tags on a DTO. Returns nil when the DTO
// is valid; the ctx parameter keeps the call shape uniform with the other
// request helpers.
func ValidateStruct(_ *fiber.Ctx, s any) error {
	if err := validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "invalid input")
		}
		fieldErrors := make(map[string][]string, len(ve))
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
		}
		return &ValidationError{Fields: fieldErrors}
	}
	return nil
}
