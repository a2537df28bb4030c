package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cadastro/pkg/sanitizer"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "masked phone", input: "(11) 98765-4321", expected: "11987654321"},
		{name: "masked cpf", input: "529.982.247-25", expected: "52998224725"},
		{name: "letters only", input: "abc", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "non-ascii digits are dropped", input: "١٢٣4", expected: "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Digits(tt.input))
		})
	}
}

func TestNFC(t *testing.T) {
	decomposed := "Jose\u0301"
	assert.Equal(t, "Jos\u00e9", sanitizer.NFC(decomposed))
	assert.Equal(t, "Jos\u00e9", sanitizer.NFC("Jos\u00e9"))
	assert.Equal(t, "", sanitizer.NFC(""))
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "Ana Maria", sanitizer.Trim(" \tAna Maria\n"))
	assert.Equal(t, "", sanitizer.Trim("   "))
}

func TestCompose(t *testing.T) {
	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NFC)
	assert.Equal(t, "José", clean("  José "))
	assert.Equal(t, "x", sanitizer.Apply(" x ", sanitizer.Trim))
	assert.Equal(t, " x ", sanitizer.Apply(" x "))
}
