package apperror

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError is a single entry of the per-field error list reported
// when form input fails validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts validator errors into a VALIDATION_ERROR
// carrying the full per-field list. Field names come from the json
// tag (see Init).
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			name := formatFieldName(e.Field())
			switch e.Tag() {
			case "required":
				fields = append(fields, FieldError{Field: e.Field(), Message: name + " is required"})
			case "min":
				fields = append(fields, FieldError{Field: e.Field(), Message: name + " is too short"})
			default:
				fields = append(fields, FieldError{Field: e.Field(), Message: name + " is invalid"})
			}
		}
		return ErrValidation.WithDetails(fields)
	}

	return ErrValidation
}
