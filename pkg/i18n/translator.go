package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// Translator resolves dot-separated keys against nested per-language maps.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	languages     []string
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads translations through adapter and validates them.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        discardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.languages = make([]string, 0, len(translations))
	for lang := range translations {
		t.languages = append(t.languages, lang)
	}
	slices.Sort(t.languages)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.languages))
	return t, nil
}

func validate(translations map[string]map[string]any) error {
	for lang, messages := range translations {
		if lang == "" {
			return errors.Join(ErrInvalidTranslations, errors.New("empty language code"))
		}
		if messages == nil {
			return errors.Join(ErrInvalidTranslations, fmt.Errorf("nil messages for language %q", lang))
		}
	}
	return nil
}

// DefaultLanguage returns the language used for unsupported requests.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.languages)
}

// Negotiate picks the best loaded language for an Accept-Language header.
func (t *Translator) Negotiate(header string) string {
	return ParseAcceptLanguage(header, t.languages, t.defaultLang)
}

// HasTranslation reports whether key resolves to a string in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key into lang. Args are name/value pairs substituted into
// "%{name}" placeholders: T("en", "welcome", "name", "Ann").
// Unloaded languages fall back to the default language; missing keys return
// the key itself unless WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	if _, ok := t.translations[lang]; !ok {
		lang = t.defaultLang
	}

	msg, ok := t.lookup(lang, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		msg = key
	}
	return substitute(msg, args)
}

// Tc translates key into the language stored in ctx by SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	messages, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	var current any = messages
	for part := range strings.SplitSeq(key, ".") {
		node, ok := asMap(current)
		if !ok {
			return "", false
		}
		if current, ok = node[part]; !ok {
			return "", false
		}
	}

	switch v := current.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				converted[ks] = val
			}
		}
		return converted, true
	}
	return nil, false
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders. Unknown names are kept as is;
// a trailing unpaired arg is ignored.
func substitute(msg string, args []string) string {
	if len(args) < 2 || !strings.Contains(msg, "%{") {
		return msg
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholderRegex.ReplaceAllStringFunc(msg, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
