package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Digits strips every character that is not an ASCII digit.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NFC returns the canonical composed form of s.
func NFC(s string) string {
	return norm.NFC.String(s)
}
