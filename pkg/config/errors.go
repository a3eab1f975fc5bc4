package config

import "errors"

var (
	ErrNilPointer      = errors.New("config: nil pointer passed to loader")
	ErrParsingConfig   = errors.New("config: failed to parse environment")
	ErrLoadingEnvFiles = errors.New("config: failed to load env files")
)
