package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fwaudit/fwaudit/internal/model"
)

// Config represents a full fwaudit baseline document.
type Config struct {
	Version     string      `yaml:"version" validate:"required"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	Device      Device      `yaml:"device,omitempty"`
	Parameters  []Parameter `yaml:"parameters" validate:"required,min=1,dive"`
}

// Device holds connection settings for the target firewall. Every field can
// be overridden from the command line; credentials are passed through only.
type Device struct {
	Host           string `yaml:"host,omitempty"`
	Port           int    `yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	Username       string `yaml:"username,omitempty"`
	ConnectTimeout int    `yaml:"connect_timeout,omitempty" validate:"omitempty,min=1,max=600"`
	CommandTimeout int    `yaml:"command_timeout,omitempty" validate:"omitempty,min=1,max=600"`
}

// Parameter declares one configuration check.
type Parameter struct {
	Name         string        `yaml:"name" validate:"required,param_name"`
	Description  string        `yaml:"description,omitempty"`
	QueryCommand string        `yaml:"query_command" validate:"required"`
	Expected     ExpectedValue `yaml:"expected_value" validate:"required,min=1"`
	Pattern      string        `yaml:"match_pattern" validate:"required"`
	CaptureGroup int           `yaml:"match_group,omitempty" validate:"omitempty,min=1,max=9"`
	Separator    string        `yaml:"separator,omitempty"`
	ResultType   string        `yaml:"result_type,omitempty" validate:"omitempty,oneof=single list"`
}

// ExpectedValue accepts either a scalar or a sequence in YAML. A scalar
// becomes a one-element list so downstream code handles a single shape.
type ExpectedValue []string

// UnmarshalYAML decodes a scalar or sequence expected value. Scalars are
// taken verbatim so numeric and boolean literals read as their textual form.
func (e *ExpectedValue) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*e = ExpectedValue{value.Value}
		return nil
	case yaml.SequenceNode:
		values := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("expected_value entries must be scalars")
			}
			values = append(values, item.Value)
		}
		*e = ExpectedValue(values)
		return nil
	default:
		return fmt.Errorf("expected_value must be a scalar or a list of scalars")
	}
}

// UnmarshalYAML applies parameter defaults.
func (p *Parameter) UnmarshalYAML(value *yaml.Node) error {
	type rawParameter Parameter
	var temp rawParameter
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*p = Parameter(temp)
	if p.CaptureGroup == 0 {
		p.CaptureGroup = 1
	}
	if p.ResultType == "" {
		p.ResultType = string(model.ResultSingle)
	}
	return nil
}

// ToSpec converts a validated parameter into the engine's spec form.
func (p Parameter) ToSpec() model.ParameterSpec {
	return model.ParameterSpec{
		Name:         p.Name,
		Description:  p.Description,
		QueryCommand: p.QueryCommand,
		Expected:     append([]string(nil), p.Expected...),
		Pattern:      p.Pattern,
		CaptureGroup: p.CaptureGroup,
		Separator:    p.Separator,
		ResultType:   model.ResultType(p.ResultType),
	}
}

// ToSpecs converts every declared parameter, preserving baseline order.
func (c *Config) ToSpecs() []model.ParameterSpec {
	specs := make([]model.ParameterSpec, 0, len(c.Parameters))
	for _, p := range c.Parameters {
		specs = append(specs, p.ToSpec())
	}
	return specs
}
