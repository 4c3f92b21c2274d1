package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"
	ierr "github.com/letybo/ordering/internal/errors"
)

var (
	validate *validator.Validate
	initOnce sync.Once
)

func NewValidator() *validator.Validate {
	initOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

func GetValidator() *validator.Validate {
	return NewValidator()
}

// ValidateRequest runs struct tag validation and returns a validation error
// whose details name each failing field
func ValidateRequest(req interface{}) error {
	if err := GetValidator().Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, err := range validateErrs {
				details[err.Field()] = err.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
