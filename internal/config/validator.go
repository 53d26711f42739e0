package config

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/huetui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks the document against its struct tags and converts the
// first failure into a ValidationError naming the offending field.
func Validate(cfg *Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("", "configuration could not be validated", err)
	}

	for _, fieldErr := range fieldErrs {
		field := strings.TrimPrefix(fieldErr.Namespace(), "Config.")
		return apperrors.NewValidationError(field, describeFailure(fieldErr), err)
	}
	return nil
}

func describeFailure(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "value is required"
	case "http_url":
		return "must be an http or https URL"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "hexcolor":
		return "must be a hex color like #aabbcc"
	case "min", "max":
		return "out of range"
	default:
		return "invalid value"
	}
}
