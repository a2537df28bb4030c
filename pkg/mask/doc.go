// Package mask formats raw form input into the display patterns used by the
// registration form: Brazilian phone numbers, CPF numbers and dates.
//
// Every formatter strips non-digits, truncates to the maximum digit count of
// its kind and lays the digits over a positional template. Separators are
// only written once the segment they introduce has at least one digit, so a
// partially typed value never shows dangling punctuation and never gets
// padded:
//
//	mask.Phone("1198")         // "(11) 98"
//	mask.Phone("11987654321")  // "(11) 98765-4321"
//	mask.CPF("52998224725")    // "529.982.247-25"
//	mask.Date("0103200")       // "01/03/200"
//
// Phone numbers switch from the 2-4-4 landline split to the 2-5-4 mobile split
// as soon as the eleventh digit is typed, and back again when it is deleted.
//
// Formatting is pure and total: any string, including the empty string, maps
// to a definite result. Stripping non-digits from the output always yields the
// (truncated) digits of the input, and formatting an already formatted value
// returns it unchanged.
//
// Format additionally moves an input caret so that it stays after the same
// digit it followed before the separators were inserted.
package mask
