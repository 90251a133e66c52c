package server

import "errors"

var (
	// ErrInvalidEnvironment is returned when an environment name is not recognized.
	ErrInvalidEnvironment = errors.New("invalid environment")
	// ErrInvalidLogLevel is returned when a log level name is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidValue is returned when an extras value has no framework representation.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidSecretKey is returned when a secret key is not base64 encoded 256-bit data.
	ErrInvalidSecretKey = errors.New("invalid secret key")
	// ErrInvalidSignature is returned when a signed value fails verification.
	ErrInvalidSignature = errors.New("invalid signature")
)
