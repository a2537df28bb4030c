package mask

import "strings"

// segment is a run of digits introduced by a literal prefix. The prefix is
// only written when the segment receives at least one digit.
type segment struct {
	prefix string
	size   int
}

var (
	landlineTemplate = []segment{{"(", 2}, {") ", 4}, {"-", 4}}
	mobileTemplate   = []segment{{"(", 2}, {") ", 5}, {"-", 4}}
	cpfTemplate      = []segment{{"", 3}, {".", 3}, {".", 3}, {"-", 2}}
	dateTemplate     = []segment{{"", 2}, {"/", 2}, {"/", 4}}
)

// render lays digits over tmpl. digits must already be truncated to the
// template capacity.
func render(digits string, tmpl []segment) string {
	var b strings.Builder
	b.Grow(len(digits) + 6)

	for _, seg := range tmpl {
		if digits == "" {
			break
		}
		n := min(seg.size, len(digits))
		b.WriteString(seg.prefix)
		b.WriteString(digits[:n])
		digits = digits[n:]
	}

	return b.String()
}
