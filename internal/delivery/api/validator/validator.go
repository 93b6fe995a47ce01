// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator validates bound request structs and reports violations by JSON field name.
type Validator struct {
	validate *playground.Validate
}

// New creates a Validator whose field names follow the json tags of the request structs.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. Constraint failures become a *domainerrors.ValidationError.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field:  fieldPath(fe),
			Reason: reason(fe),
		})
	}

	return domainerrors.NewValidationError(violations...)
}

// fieldPath drops the top-level struct name from the namespace, e.g. "req.readings[0].weightG".
func fieldPath(fe playground.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func reason(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "uuid":
		return "must be a UUID"
	case "url":
		return "must be a URL"
	case "datetime":
		return "must be a timestamp in layout " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
