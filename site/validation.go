package site

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"portfolio/content"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// a zero date counts as missing
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(content.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.Time
	}, content.Date{})

	return v
}

// formatValidationErrors maps each failing field to a readable message.
func formatValidationErrors(err error) map[string]string {
	fields := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		if err != nil {
			fields["_"] = err.Error()
		}
		return fields
	}

	for _, fe := range validationErrors {
		fields[fe.Field()] = validationMessage(fe)
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return "cannot be empty"
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		element := fmt.Sprintf("failed on the '%s' tag", fe.Tag())
		if fe.Param() != "" {
			element = fmt.Sprintf("%s (value: %s)", element, fe.Param())
		}
		return element
	}
}

// validationSummary joins the field errors into one sentence for the admin
// screens.
func validationSummary(err error) string {
	fields := formatValidationErrors(err)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name == "_" {
			parts = append(parts, fields[name])
			continue
		}
		parts = append(parts, name+" "+fields[name])
	}
	return strings.Join(parts, "; ")
}
