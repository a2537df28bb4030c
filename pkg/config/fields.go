package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cadastro/pkg/form"
	"github.com/dmitrymomot/cadastro/pkg/rules"
)

type fieldsFile struct {
	Fields []fieldEntry `yaml:"fields"`
}

type fieldEntry struct {
	Name  string   `yaml:"name"`
	Mask  string   `yaml:"mask"`
	Rules ruleList `yaml:"rules"`
}

// ruleList accepts either a YAML sequence or a comma separated scalar.
type ruleList []string

func (l *ruleList) UnmarshalYAML(node *yaml.Node) error {
	var items []string
	switch node.Kind {
	case yaml.ScalarNode:
		names, err := rules.ParseList(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		for _, n := range names {
			items = append(items, n.String())
		}
	case yaml.SequenceNode:
		if err := node.Decode(&items); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := rules.ParseName(item); err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
		}
	default:
		return fmt.Errorf("line %d: rules must be a list or a comma separated string", node.Line)
	}
	*l = items
	return nil
}

// ParseFields decodes YAML field bindings.
func ParseFields(data []byte) ([]form.Field, error) {
	var file fieldsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrParsingFields, err)
	}

	fields := make([]form.Field, 0, len(file.Fields))
	for _, e := range file.Fields {
		fields = append(fields, form.Field{
			Name:  e.Name,
			Mask:  e.Mask,
			Rules: []string(e.Rules),
		})
	}
	return fields, nil
}

// LoadFields reads YAML field bindings from path.
func LoadFields(path string) ([]form.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingFields, err)
	}
	return ParseFields(data)
}
