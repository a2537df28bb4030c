package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// ASCII only: fullwidth or Arabic-Indic digits are not accepted as input.
	nonDigitRegex = regexp.MustCompile(`\D`)
)
