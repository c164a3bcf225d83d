package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate is shared by every DTO; validator caches struct metadata.
var Validate = validator.New()

// FieldErrors turns validator.ValidationErrors into {field: [tag...]}.
// Returns nil when err is not a validation error.
func FieldErrors(err error) map[string][]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := toSnake(fe.Field())
		out[field] = append(out[field], describeTag(fe))
	}
	return out
}

// ValidationError replies 422 with per-field messages, or 400 when err is
// not a validator error.
func ValidationError(c *fiber.Ctx, err error) error {
	if fields := FieldErrors(err); fields != nil {
		return JsonValidationError(c, fields)
	}
	return JsonError(c, fiber.StatusBadRequest, "Entrada inválida")
}

// ParseAndValidate decodes the JSON body into dst and validates it.
// A non-nil return has already been written to the response.
func ParseAndValidate(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := Validate.Struct(dst); err != nil {
		return false, ValidationError(c, err)
	}
	return true, nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "obrigatório"
	case "email":
		return "e-mail inválido"
	case "min":
		return "mínimo " + fe.Param()
	case "max":
		return "máximo " + fe.Param()
	case "len":
		return "deve ter tamanho " + fe.Param()
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "url":
		return "URL inválida"
	case "uuid", "uuid4":
		return "UUID inválido"
	case "gte":
		return "deve ser >= " + fe.Param()
	case "lte":
		return "deve ser <= " + fe.Param()
	default:
		return fe.Tag()
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
