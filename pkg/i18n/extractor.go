package i18n

import "net/http"

// LangExtractor picks the request language. An empty result means "use the default".
type LangExtractor func(r *http.Request) string

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

type extractorConfig struct {
	queryParam string
	cookieName string
	supported  []string
}

// WithQueryParamName sets the query parameter holding an explicit language. Default "lang".
func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.queryParam = name
		}
	}
}

// WithCookieName sets the cookie holding a language preference. Default "lang".
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithSupportedLanguages restricts results to langs.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *extractorConfig) {
		if len(langs) > 0 {
			c.supported = langs
		}
	}
}

// DefaultLangExtractor checks the query parameter, then the cookie, then
// Accept-Language. Values outside the supported languages are skipped.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &extractorConfig{queryParam: "lang", cookieName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		if lang := NormalizeLanguage(r.URL.Query().Get(cfg.queryParam), cfg.supported); lang != "" {
			return lang
		}
		if c, err := r.Cookie(cfg.cookieName); err == nil {
			if lang := NormalizeLanguage(c.Value, cfg.supported); lang != "" {
				return lang
			}
		}
		if len(cfg.supported) == 0 {
			return PreferredLanguage(r.Header.Get("Accept-Language"))
		}
		return ParseAcceptLanguage(r.Header.Get("Accept-Language"), cfg.supported, "")
	}
}
