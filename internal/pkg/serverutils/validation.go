package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures to a
// 400 fiber error listing the offending fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	msg := "Validation failed:"
	for _, fieldErr := range validationErrors {
		msg += fmt.Sprintf(" %s (%s);", fieldErr.Field(), fieldErr.Tag())
	}
	return fiber.NewError(fiber.StatusBadRequest, msg)
}
