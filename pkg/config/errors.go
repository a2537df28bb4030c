package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrReadingFields is returned when a field bindings file cannot be read.
	ErrReadingFields = errors.New("failed to read field bindings")

	// ErrParsingFields is returned when field bindings are not valid YAML or reference unknown rules.
	ErrParsingFields = errors.New("failed to parse field bindings")
)
