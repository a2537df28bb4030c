package rules

import "errors"

// ErrUnknownRule is returned for a rule name that is not registered.
var ErrUnknownRule = errors.New("unknown rule")
