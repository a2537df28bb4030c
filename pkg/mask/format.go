package mask

import (
	"unicode/utf8"

	"github.com/dmitrymomot/cadastro/pkg/sanitizer"
)

// Input is the text of a field together with the caret position, counted in
// characters from the start of Value.
type Input struct {
	Value string `json:"value"`
	Caret int    `json:"caret"`
}

// Output is the formatted text and the adjusted caret.
type Output struct {
	Value string `json:"value"`
	Caret int    `json:"caret"`
}

// Phone formats up to 11 digits as (DD) DDDD-DDDD, or (DD) DDDDD-DDDD once
// the eleventh digit is present.
func Phone(raw string) string {
	digits := truncatedDigits(raw, MaxDigits(KindPhone))
	if len(digits) <= 10 {
		return render(digits, landlineTemplate)
	}
	return render(digits, mobileTemplate)
}

// CPF formats up to 11 digits as DDD.DDD.DDD-DD.
func CPF(raw string) string {
	return render(truncatedDigits(raw, MaxDigits(KindCPF)), cpfTemplate)
}

// Date formats up to 8 digits as DD/MM/YYYY.
func Date(raw string) string {
	return render(truncatedDigits(raw, MaxDigits(KindDate)), dateTemplate)
}

// Apply formats raw with the mask k. For an unknown kind raw is returned
// unchanged together with false.
func Apply(k Kind, raw string) (string, bool) {
	switch k {
	case KindPhone:
		return Phone(raw), true
	case KindCPF:
		return CPF(raw), true
	case KindDate:
		return Date(raw), true
	}
	return raw, false
}

// Format applies the mask k to in.Value and repositions the caret. For an
// unknown kind the input is returned untouched together with false.
func Format(k Kind, in Input) (Output, bool) {
	formatted, ok := Apply(k, in.Value)
	if !ok {
		return Output(in), false
	}
	return Output{Value: formatted, Caret: Caret(in.Value, formatted, in.Caret)}, true
}

// Caret returns the caret position in formatted for a caret that was at
// position caret in raw. The caret moves forward by the number of characters
// the formatter inserted ahead of the digits that preceded it; it never moves
// backwards and never passes the end of formatted.
func Caret(raw, formatted string, caret int) int {
	runes := []rune(raw)
	caret = max(0, min(caret, len(runes)))

	before := len(sanitizer.Digits(string(runes[:caret])))
	target := digitEnd(formatted, before)

	shift := max(target-caret, 0)
	return min(caret+shift, utf8.RuneCountInString(formatted))
}

// digitEnd returns the index just past the n-th digit of s, or len(s) when s
// holds fewer than n digits. s is the output of a formatter and so is ASCII.
func digitEnd(s string, n int) int {
	if n == 0 {
		return 0
	}
	seen := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			seen++
			if seen == n {
				return i + 1
			}
		}
	}
	return len(s)
}

func truncatedDigits(raw string, limit int) string {
	digits := sanitizer.Digits(raw)
	if len(digits) > limit {
		return digits[:limit]
	}
	return digits
}
