package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest returns a 400 fiber.Error describing the first failing field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, describe(verrs[0]))
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Invalid %s: required", field)
	case "max":
		return fmt.Sprintf("Invalid %s: must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("Invalid %s: must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Invalid %s: must be one of %s", field, fe.Param())
	default:
		return fmt.Sprintf("Invalid %s", field)
	}
}
