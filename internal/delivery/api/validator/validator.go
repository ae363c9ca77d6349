// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"cepcache/internal/domain/entity"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator with the address-specific rules registered.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	_ = validate.RegisterValidation("zipcode", func(fl playground.FieldLevel) bool {
		_, err := entity.ParseZipcode(fl.Field().String())

		return err == nil
	})
	_ = validate.RegisterValidation("state_acronym", func(fl playground.FieldLevel) bool {
		_, ok := entity.ParseStateAcronym(fl.Field().String())

		return ok
	})

	return &Validator{validate: validate}
}

// Validate runs the struct tags of i.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens validation errors into field -> failed rule.
func FieldErrors(err error) map[string]string {
	validationErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return fields
}
