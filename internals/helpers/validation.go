// file: internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JsonValidationError: khusus error validasi (validator.v10), per-field map.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], messageForTag(fe))
	}
	return JsonErrorWithFields(c, fiber.StatusBadRequest, "Validasi gagal", fields)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " wajib diisi."
	case "email":
		return "Format email tidak valid."
	case "min":
		return fe.Field() + " harus minimal " + fe.Param() + "."
	case "max":
		return fe.Field() + " harus maksimal " + fe.Param() + "."
	case "gt":
		return fe.Field() + " harus lebih besar dari " + fe.Param() + "."
	case "gte":
		return fe.Field() + " harus >= " + fe.Param() + "."
	case "lte":
		return fe.Field() + " harus <= " + fe.Param() + "."
	case "oneof":
		return fe.Field() + " harus salah satu dari: " + fe.Param() + "."
	default:
		return "Format tidak valid."
	}
}
