package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	tagRegex        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Unslash removes backslash escaping: `\"` becomes `"` and `\\` becomes `\`.
// A trailing lone backslash is dropped.
func Unslash(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// StripTags unescapes HTML entities, then removes HTML tags, so entity-encoded
// markup such as "&lt;b&gt;" is stripped too.
func StripTags(s string) string {
	return tagRegex.ReplaceAllString(html.UnescapeString(s), "")
}

// RemoveControlChars removes control characters, line breaks and tabs included.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// CollapseWhitespace replaces runs of whitespace with a single space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine turns line breaks and tabs into spaces, then collapses whitespace.
func SingleLine(s string) string {
	return CollapseWhitespace(strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s))
}

// MaxBytes truncates s to at most maxBytes bytes without splitting a
// multi-byte rune.
func MaxBytes(s string, maxBytes int) string {
	if maxBytes <= 0 {
		return ""
	}
	if len(s) <= maxBytes {
		return s
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
