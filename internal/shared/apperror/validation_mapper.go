package apperror

import (
	"fmt"
	"net/http"
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

// MapValidationError turns the first validator error into a readable AppError.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
		case "email":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be a valid email address", field), http.StatusBadRequest)
		case "uuid":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be a valid UUID", field), http.StatusBadRequest)
		case "oneof":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be one of: %s", field, e.Param()), http.StatusBadRequest)
		case "min":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be at least %s", field, e.Param()), http.StatusBadRequest)
		case "max":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be at most %s", field, e.Param()), http.StatusBadRequest)
		default:
			return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
		}
	}

	return Wrap(err, CodeInvalidInput, "The provided input is invalid", http.StatusBadRequest)
}
