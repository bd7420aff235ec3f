package config

import "errors"

// Validation errors. Callers match them with errors.Is.
var (
	ErrUnknownFrontend = errors.New("config: unknown frontend")
	ErrUnknownPreset   = errors.New("config: unknown preset")
	ErrUnknownBody     = errors.New("config: unknown body")
	ErrSpeedRange      = errors.New("config: speed outside control range")
	ErrInvalidFPS      = errors.New("config: fps must be positive")
	ErrInvalidCamera   = errors.New("config: invalid camera settings")
)
