package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cadastro/pkg/validator"
)

func TestIsPresent(t *testing.T) {
	assert.True(t, validator.IsPresent("a"))
	assert.True(t, validator.IsPresent("  a  "))
	assert.False(t, validator.IsPresent(""))
	assert.False(t, validator.IsPresent(" \t\n "))
}

func TestIsName(t *testing.T) {
	valid := []string{"Ana", "  Ana  ", "José", "Jose\u0301", "Maria da Silva"}
	for _, v := range valid {
		assert.True(t, validator.IsName(v), "should be valid: %q", v)
	}

	invalid := []string{"", "Al", "  Al  ", "   "}
	for _, v := range invalid {
		assert.False(t, validator.IsName(v), "should be invalid: %q", v)
	}
}

func TestIsEmail(t *testing.T) {
	valid := []string{"a@b", "ana@example.com", "  ana@example.com ", "a@@b", "ana.silva+tag@mail.com.br"}
	for _, v := range valid {
		assert.True(t, validator.IsEmail(v), "should be valid: %q", v)
	}

	invalid := []string{"", "ana", "@example.com", "ana@", " @ ", "ana\n@example.com"}
	for _, v := range invalid {
		assert.False(t, validator.IsEmail(v), "should be invalid: %q", v)
	}
}

func TestIsPhone(t *testing.T) {
	assert.True(t, validator.IsPhone("(11) 3456-7890"))
	assert.True(t, validator.IsPhone("11987654321"))
	assert.True(t, validator.IsPhone("+55 11 98765 4321"))
	assert.False(t, validator.IsPhone("(11) 3456-789"))
	assert.False(t, validator.IsPhone(""))
	assert.False(t, validator.IsPhone("telefone"))
}
