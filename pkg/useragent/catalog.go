package useragent

import (
	"bytes"
	"encoding/json"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Localizer resolves a translation key for a language.
// *i18n.Translator satisfies it.
type Localizer interface {
	T(lang, key string, args ...string) string
}

// Entry is a catalog value with its display label.
type Entry struct {
	Key   string
	Label string
}

// Record is the uniform shape used to bind a catalog to UI choice lists.
type Record struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog is an ordered key → label mapping.
// It encodes to a JSON object with keys in catalog order.
type Catalog []Entry

// Records projects the catalog into value/label records.
func (c Catalog) Records() []Record {
	records := make([]Record, len(c))
	for i, e := range c {
		records[i] = Record{Value: e.Key, Label: e.Label}
	}
	return records
}

// Keys returns the catalog keys in order.
func (c Catalog) Keys() []string {
	keys := make([]string, len(c))
	for i, e := range c {
		keys[i] = e.Key
	}
	return keys
}

// Map returns the catalog as a plain map. Order is lost.
func (c Catalog) Map() map[string]string {
	m := make(map[string]string, len(c))
	for _, e := range c {
		m[e.Key] = e.Label
	}
	return m
}

// Label returns the display label stored for key.
func (c Catalog) Label(key string) (string, bool) {
	for _, e := range c {
		if e.Key == key {
			return e.Label, true
		}
	}
	return "", false
}

// MarshalJSON implements json.Marshaler preserving insertion order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		label, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(label)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Translation key prefixes, one per catalog.
const (
	BrowsersKeyPrefix    = "useragent.browsers."
	OSKeyPrefix          = "useragent.os."
	DeviceTypesKeyPrefix = "useragent.devices."
)

// Translation keys used by UserAgent.Describe.
const (
	FormattedKey      = "useragent.formatted"
	UnknownBrowserKey = "useragent.unknown.browser"
	UnknownOSKey      = "useragent.unknown.os"
)

// CatalogOption configures label resolution of the List functions.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	localizer Localizer
	lang      string
}

// WithLocalizer resolves labels through l in language lang.
// Keys the localizer does not know keep their default English label.
func WithLocalizer(l Localizer, lang string) CatalogOption {
	return func(c *catalogConfig) {
		if l != nil {
			c.localizer = l
			c.lang = lang
		}
	}
}

// TranslationKey returns the localization key of a catalog value,
// e.g. "useragent.browsers.chrome-mobile".
func TranslationKey(prefix, value string) string {
	return prefix + slug.Make(value)
}

// Catalog values are derived from the signature tables, so every key is
// a label the matcher can produce.
var (
	browserKeys    = uniqueLabels(browserSignatures)
	osKeys         = uniqueLabels(osSignatures)
	deviceTypeKeys = []DeviceType{DeviceTypeMobile, DeviceTypeTablet, DeviceTypeDesktop, DeviceTypeBot}
)

func uniqueLabels(table []Signature) []string {
	seen := make(map[string]struct{}, len(table))
	labels := make([]string, 0, len(table))
	for _, s := range table {
		if _, ok := seen[s.Label]; ok {
			continue
		}
		seen[s.Label] = struct{}{}
		labels = append(labels, s.Label)
	}
	return labels
}

// ListBrowsers returns every browser label DetectBrowser can produce.
func ListBrowsers(opts ...CatalogOption) Catalog {
	return buildCatalog(BrowsersKeyPrefix, browserKeys, func(k string) string { return k }, opts)
}

// ListOperatingSystems returns every OS label DetectOS can produce.
func ListOperatingSystems(opts ...CatalogOption) Catalog {
	return buildCatalog(OSKeyPrefix, osKeys, func(k string) string { return k }, opts)
}

// ListDeviceTypes returns the device types a detected client can have.
// DeviceTypeUnknown is not listed.
func ListDeviceTypes(opts ...CatalogOption) Catalog {
	keys := make([]string, len(deviceTypeKeys))
	for i, d := range deviceTypeKeys {
		keys[i] = string(d)
	}
	title := cases.Title(language.English)
	return buildCatalog(DeviceTypesKeyPrefix, keys, title.String, opts)
}

func buildCatalog(prefix string, keys []string, defaultLabel func(string) string, opts []CatalogOption) Catalog {
	cfg := &catalogConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	c := make(Catalog, 0, len(keys))
	for _, k := range keys {
		label := localize(cfg.localizer, cfg.lang, TranslationKey(prefix, k), defaultLabel(k))
		c = append(c, Entry{Key: k, Label: label})
	}
	return c
}

// localize resolves key through l, keeping fallback when l is nil or has no
// translation. Translators return the key itself for missing entries.
func localize(l Localizer, lang, key, fallback string, args ...string) string {
	if l == nil {
		return fallback
	}
	if t := l.T(lang, key, args...); t != "" && t != key {
		return t
	}
	return fallback
}

// Describe is Formatted with the browser, the OS and the sentence itself
// resolved through l. A nil l yields Formatted.
func (ua UserAgent) Describe(l Localizer, lang string) string {
	if l == nil {
		return ua.Formatted()
	}

	browser := localize(l, lang, UnknownBrowserKey, UnknownBrowser)
	if ua.browser.Name != "" {
		browser = localize(l, lang, TranslationKey(BrowsersKeyPrefix, ua.browser.Name), ua.browser.Name)
	}
	os := localize(l, lang, UnknownOSKey, UnknownOS)
	if ua.os.Name != "" {
		os = localize(l, lang, TranslationKey(OSKeyPrefix, ua.os.Name), ua.os.Name)
	}
	return localize(l, lang, FormattedKey, formatted(browser, os), "browser", browser, "os", os)
}
