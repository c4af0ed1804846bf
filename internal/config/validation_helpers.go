package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
)

// convertValidationError normalizes validator errors into fluent validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return fluenterrors.NewValidationError(field, msg, err)
	}

	return fluenterrors.NewValidationError("gallery", err.Error(), err)
}

// yamlishFieldName turns "Gallery.Overflow.AlwaysShowOverflow" into
// "overflow.always_show_overflow", the path a user sees in the file.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		prevLower = !upper && (r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
		b.WriteRune(r)
	}
	return b.String()
}

func fieldFor(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}
