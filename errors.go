package website

import "errors"

var (
	// ErrConfigRead is returned when a config file exists but cannot be read
	ErrConfigRead = errors.New("read config")
	// ErrConfigParse is returned when a config file has malformed contents
	ErrConfigParse = errors.New("parse config")
	// ErrTypeMismatch is returned when merged values do not fit the typed settings record
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidSettings is returned when a decoded settings record fails validation
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrMissingEnv is returned when a strictly mapped environment variable is unset
	ErrMissingEnv = errors.New("missing environment variable")
)
