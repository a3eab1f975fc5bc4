package i18n

import (
	"io"
	"log/slog"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a requested one is not loaded.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key when a translation is missing.
// Enabled by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. A discard logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key lookup.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.logMissing = enabled
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
