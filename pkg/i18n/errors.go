package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n: translation adapter is nil")
	ErrInvalidTranslations  = errors.New("i18n: invalid translations")
	ErrLoadingCancelled     = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadDir      = errors.New("i18n: failed to read translations directory")
	ErrFailedToReadFile     = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile    = errors.New("i18n: failed to parse translation file")
	ErrNoTranslationFiles   = errors.New("i18n: no translation files found")
	ErrFailedToParseYAML    = errors.New("i18n: failed to parse YAML content")
	ErrFailedToParseJSON    = errors.New("i18n: failed to parse JSON content")
	ErrUnsupportedStructure = errors.New("i18n: translations must be keyed by language")
)
