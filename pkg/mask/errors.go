package mask

import "errors"

// ErrUnknownKind is returned when a mask name does not match any known kind.
var ErrUnknownKind = errors.New("unknown mask kind")
