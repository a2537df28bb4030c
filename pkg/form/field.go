package form

import (
	"github.com/dmitrymomot/cadastro/pkg/mask"
	"github.com/dmitrymomot/cadastro/pkg/rules"
)

// Field binds a form field to an optional mask and an ordered rule list.
// Mask and Rules hold names as they appear in configuration.
type Field struct {
	Name  string   `yaml:"name" json:"name"`
	Mask  string   `yaml:"mask,omitempty" json:"mask,omitempty"`
	Rules []string `yaml:"rules" json:"rules"`
}

// Registration returns the bindings of the registration form.
func Registration() []Field {
	return []Field{
		{Name: "nome", Rules: names(rules.Required, rules.FullName)},
		{Name: "email", Rules: names(rules.Required, rules.Email)},
		{Name: "telefone", Mask: mask.KindPhone.String(), Rules: names(rules.Required, rules.Phone)},
		{Name: "cpf", Mask: mask.KindCPF.String(), Rules: names(rules.Required, rules.CPF)},
		{Name: "nascimento", Mask: mask.KindDate.String(), Rules: names(rules.Required, rules.Adult)},
	}
}

func names(ns ...rules.Name) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.String()
	}
	return out
}

// binding is a Field with every name resolved.
type binding struct {
	name  string
	mask  mask.Kind
	rules []rules.Rule
}
