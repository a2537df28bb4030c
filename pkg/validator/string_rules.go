package validator

import (
	"regexp"
	"unicode/utf8"

	"github.com/dmitrymomot/cadastro/pkg/sanitizer"
)

const (
	minNameLength  = 3
	minPhoneDigits = 10
)

// Something before and after an "@"; the domain is not required to have a dot.
var emailRegex = regexp.MustCompile(`.+@.+`)

// Names are compared composed so accents typed with combining marks count once.
var normalizeName = sanitizer.Compose(sanitizer.Trim, sanitizer.NFC)

// IsPresent reports whether value has any non-whitespace content.
func IsPresent(value string) bool {
	return sanitizer.Trim(value) != ""
}

// IsName reports whether the trimmed value has at least three characters.
func IsName(value string) bool {
	return utf8.RuneCountInString(normalizeName(value)) >= minNameLength
}

// IsEmail performs the minimal local@domain check.
func IsEmail(value string) bool {
	return emailRegex.MatchString(sanitizer.Trim(value))
}

// IsPhone reports whether value holds at least ten digits, area code included.
func IsPhone(value string) bool {
	return len(sanitizer.Digits(value)) >= minPhoneDigits
}

func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsPresent(value) },
		Error: ValidationError{Field: field, Key: "obrigatorio", Message: MsgRequired},
	}
}

func ValidName(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsName(value) },
		Error: ValidationError{Field: field, Key: "nome", Message: MsgName},
	}
}

func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: ValidationError{Field: field, Key: "email", Message: MsgEmail},
	}
}

func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsPhone(value) },
		Error: ValidationError{Field: field, Key: "telefone", Message: MsgPhone},
	}
}
