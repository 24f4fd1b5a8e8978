package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/consent-keeper/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request DTOs with go-playground/validator.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a validator with the custom tags registered.
// Field names in errors are the JSON names.
func NewRequestValidator() (Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("banner_type", validateBannerType); err != nil {
		return nil, err
	}

	return &RequestValidator{validate: v}, nil
}

func (r *RequestValidator) Validate(ctx context.Context, v any, fields ...string) error {
	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Ptr && !value.IsNil() {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w: %T", ErrValidation, ErrUnsupportedType, v)
	}

	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, v, fields...)
	} else {
		err = r.validate.StructCtx(ctx, v)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %s", ErrValidation, describe(validationErrors))
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// describe renders errors as "field: rule" pairs, e.g. "clientId: required".
func describe(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		parts = append(parts, field+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}

func validateBannerType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return models.BannerType(fl.Field().String()).IsValid()
}
