package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const adultAge = 18

// ParseBirthDate parses a DD/MM/YYYY date. Each component must be a positive
// integer and the date must exist on the calendar; years below 100 are
// rejected as incomplete input. Components after the third are ignored.
func ParseBirthDate(value string) (time.Time, error) {
	parts := strings.Split(value, "/")
	if len(parts) < 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n <= 0 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if day > 31 || month > 12 || year < 100 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q does not exist", ErrInvalidDate, value)
	}

	return date, nil
}

// Age returns the completed years between the birth date in value and now.
func Age(value string, now time.Time) (int, error) {
	birth, err := ParseBirthDate(value)
	if err != nil {
		return 0, err
	}
	return yearsBetween(birth, now), nil
}

// IsAdult reports whether value is a valid birth date at least 18 years
// before now. Malformed dates are not adults.
func IsAdult(value string, now time.Time) bool {
	age, err := Age(value, now)
	return err == nil && age >= adultAge
}

// yearsBetween counts whole years, decrementing when the birthday has not
// yet come around in now's year. A 29 February birthday completes on 1 March
// in non-leap years.
func yearsBetween(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	months := int(now.Month()) - int(birth.Month())
	if months < 0 || (months == 0 && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// MinAge18 checks that value is the birth date of someone 18 or older at now.
func MinAge18(field, value string, now time.Time) Rule {
	return Rule{
		Check: func() bool { return IsAdult(value, now) },
		Error: ValidationError{Field: field, Key: "maior-de-idade", Message: MsgAdult},
	}
}
