// Package sanitizer provides the small normalisation helpers shared by the
// masking and validation packages.
//
// Form input arrives exactly as typed: surrounding spaces, punctuation mixed
// with digits, names entered with decomposed accents. The helpers here reduce
// that input to the canonical shape the rules compare against:
//
//   - Digits keeps ASCII digits only, dropping every separator a user or a
//     mask may have inserted.
//   - Trim removes leading and trailing whitespace.
//   - NFC composes accents so "José" typed as J-o-s-e-U+0301 counts as four
//     characters, the same as its precomposed spelling.
//
// Apply and Compose build pipelines from these helpers:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NFC)
//	name := clean("  José ") // "José"
//
// None of the helpers returns an error and none keeps state, so they are safe
// for concurrent use.
package sanitizer
