package form

import "errors"

var (
	// ErrUnknownField is returned when a field is not part of the form.
	ErrUnknownField = errors.New("unknown field")

	// ErrDuplicateField is returned by New when two bindings share a name.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrEmptyFieldName is returned by New for a binding without a name.
	ErrEmptyFieldName = errors.New("empty field name")
)
