package exceptions

import (
	"citabot-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var customValidationMessages = map[string]string{
	"required":   "es obligatorio",
	"email":      "no es un correo válido",
	"min":        "es demasiado corto",
	"max":        "es demasiado largo",
	"password":   "debe tener al menos 8 caracteres, una mayúscula y un carácter especial",
	"permission": "debe tener el formato MODULO:ACCION",
}

// FormatFirstValidationError turns the first validator error into a
// client-facing Spanish message; anything else degrades to the generic one.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	message, ok := customValidationMessages[firstErr.Tag()]
	if !ok {
		message = "no es válido"
	}
	return fieldName + " " + message
}
