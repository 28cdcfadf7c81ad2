// Package validator adapts go-playground/validator to echo and the RPC layer.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates structs by their `validate` tags and reports
// field names as they appear in JSON.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with JSON field naming.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Failures are VALIDATION_FAILED errors
// listing every offending field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "failed to validate payload")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.SplitN(fe.Namespace(), ".", 2)
	name := fe.Field()
	if len(field) == 2 {
		name = field[1]
	}

	if fe.Param() == "" {
		return fmt.Sprintf("%s: failed %s", name, fe.Tag())
	}

	return fmt.Sprintf("%s: failed %s=%s", name, fe.Tag(), fe.Param())
}
