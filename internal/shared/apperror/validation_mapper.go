package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// FieldErrors flattens a binding error into per-field messages keyed by
// the json/form field name. Non-validator errors yield an empty map.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		human := formatFieldName(field)
		switch e.Tag() {
		case "required":
			out[field] = fmt.Sprintf("%s is required", human)
		case "email":
			out[field] = fmt.Sprintf("%s must be a valid email address", human)
		case "uuid":
			out[field] = fmt.Sprintf("%s must be a valid identifier", human)
		case "oneof":
			out[field] = fmt.Sprintf("%s must be one of: %s", human, e.Param())
		case "max":
			out[field] = fmt.Sprintf("%s must not exceed %s characters", human, e.Param())
		default:
			out[field] = fmt.Sprintf("%s is invalid", human)
		}
	}
	return out
}

// MapValidationError converts a binding error into the AppError for its
// first failing field.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		human := formatFieldName(e.Field())
		if e.Tag() == "required" {
			return RequiredField(human)
		}
		return InvalidField(human)
	}

	return ErrInvalidInput
}
