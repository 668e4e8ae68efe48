package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	fwerrors "github.com/fwaudit/fwaudit/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on a baseline.
// Validation failures here are fatal: verification never starts against a
// baseline the loader could not fully normalize.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fwerrors.NewValidationError("config", "baseline is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Parameters))
	for i, param := range cfg.Parameters {
		if prev, exists := seen[param.Name]; exists {
			return fwerrors.NewValidationError(fieldForParameter(i, "name"),
				fmt.Sprintf("duplicate parameter name %q (first declared at parameters[%d])", param.Name, prev), nil)
		}
		seen[param.Name] = i

		if param.ResultType == "single" && len(param.Expected) > 1 {
			return fwerrors.NewValidationError(fieldForParameter(i, "expected_value"),
				"single result type takes exactly one expected value", nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into fwaudit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return fwerrors.NewValidationError(field, msg, err)
	}

	return fwerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForParameter(index int, field string) string {
	return fmt.Sprintf("parameters[%d].%s", index, field)
}
