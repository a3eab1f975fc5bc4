package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size handed to the tag parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage returns the entry of supported that best serves header,
// honouring quality values and regional fallbacks (de-CH is served by de).
// defaultLang is returned when nothing matches or the header is malformed.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	header = strings.TrimSpace(header)
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}
	return matchLanguage(desired, supported, defaultLang)
}

// NormalizeLanguage returns the entry of supported matching lang, or "" if
// lang is not a valid tag or has no match. With no supported languages the
// canonical form of lang is returned.
func NormalizeLanguage(lang string, supported []string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	if len(supported) == 0 {
		return tag.String()
	}
	return matchLanguage([]language.Tag{tag}, supported, "")
}

// PreferredLanguage returns the highest weighted tag of an Accept-Language
// header, or "" when the header is empty or malformed.
func PreferredLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return ""
	}
	return desired[0].String()
}

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

func matchLanguage(desired []language.Tag, supported []string, fallback string) string {
	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No || idx < 0 || idx >= len(codes) {
		return fallback
	}
	return codes[idx]
}
