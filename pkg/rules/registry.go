package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/cadastro/pkg/validator"
)

// Name identifies a registered rule.
type Name string

const (
	Required Name = "obrigatorio"
	FullName Name = "nome"
	Email    Name = "email"
	Phone    Name = "telefone"
	CPF      Name = "cpf"
	Adult    Name = "maior-de-idade"
)

func (n Name) String() string {
	return string(n)
}

// Func checks a field value. now is the reference time for date based rules.
type Func func(value string, now time.Time) bool

// Rule is a registry entry.
type Rule struct {
	Name    Name
	Check   Func
	Message string
}

// Verdict is the outcome of a single rule. Message is set only on failure.
type Verdict struct {
	Rule    Name   `json:"rule"`
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}

func ignoreClock(check func(string) bool) Func {
	return func(value string, _ time.Time) bool { return check(value) }
}

// ordered is the registration order reported by Names.
var ordered = []Rule{
	{Name: Required, Check: ignoreClock(validator.IsPresent), Message: validator.MsgRequired},
	{Name: FullName, Check: ignoreClock(validator.IsName), Message: validator.MsgName},
	{Name: Email, Check: ignoreClock(validator.IsEmail), Message: validator.MsgEmail},
	{Name: Phone, Check: ignoreClock(validator.IsPhone), Message: validator.MsgPhone},
	{Name: CPF, Check: ignoreClock(validator.IsCPF), Message: validator.MsgCPF},
	{Name: Adult, Check: validator.IsAdult, Message: validator.MsgAdult},
}

var table = func() map[Name]Rule {
	m := make(map[Name]Rule, len(ordered))
	for _, r := range ordered {
		m[r.Name] = r
	}
	return m
}()

// Names returns every registered rule name in registration order.
func Names() []Name {
	names := make([]Name, len(ordered))
	for i, r := range ordered {
		names[i] = r.Name
	}
	return names
}

// ParseName resolves a rule name.
func ParseName(name string) (Name, error) {
	if _, ok := table[Name(name)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return Name(name), nil
}

// Lookup returns the registry entry for name.
func Lookup(name Name) (Rule, error) {
	r, ok := table[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, string(name))
	}
	return r, nil
}

// MessageFor returns the failure message of name.
func MessageFor(name Name) (string, error) {
	r, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return r.Message, nil
}

// ValidatorFor returns the check of name.
func ValidatorFor(name Name) (Func, error) {
	r, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return r.Check, nil
}

// Check evaluates name against value.
func Check(name Name, value string, now time.Time) (Verdict, error) {
	r, err := Lookup(name)
	if err != nil {
		return Verdict{Rule: name}, err
	}
	return r.Evaluate(value, now), nil
}

// Evaluate runs the rule against value.
func (r Rule) Evaluate(value string, now time.Time) Verdict {
	if r.Check(value, now) {
		return Verdict{Rule: r.Name, Passed: true}
	}
	return Verdict{Rule: r.Name, Message: r.Message}
}

// ParseList resolves a comma separated list such as "obrigatorio, cpf".
// Blank items are skipped and order is kept. The first unknown name aborts
// parsing.
func ParseList(list string) ([]Name, error) {
	var names []Name
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		n, err := ParseName(item)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, nil
}
