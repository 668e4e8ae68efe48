package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	paramNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("param_name", func(fl validator.FieldLevel) bool {
			return paramNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
