package validator

import (
	"strings"

	"github.com/dmitrymomot/cadastro/pkg/sanitizer"
)

const cpfLength = 11

// IsCPF validates a Brazilian CPF number in any formatting.
func IsCPF(value string) bool {
	digits := sanitizer.Digits(value)
	if len(digits) != cpfLength {
		return false
	}
	// 000.000.000-00 through 999.999.999-99 pass the checksum but are never issued.
	if strings.Count(digits, digits[:1]) == cpfLength {
		return false
	}

	dv1 := cpfCheckDigit(digits[:9])
	dv2 := cpfCheckDigit(digits[:9] + string('0'+dv1))

	return digits[9]-'0' == dv1 && digits[10]-'0' == dv2
}

// cpfCheckDigit computes the modulo 11 check digit of base, weighting digits
// from len(base)+1 down to 2.
func cpfCheckDigit(base string) byte {
	sum := 0
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * (len(base) + 1 - i)
	}

	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return byte(11 - rem)
}

func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsCPF(value) },
		Error: ValidationError{Field: field, Key: "cpf", Message: MsgCPF},
	}
}
