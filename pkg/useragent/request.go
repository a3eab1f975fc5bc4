package useragent

import (
	"net/http"

	"github.com/dmitrymomot/uadetect/pkg/sanitizer"
)

// maxHeaderLength caps the sanitized header at 1024 bytes to bound the work
// done on hostile, oversized headers.
const maxHeaderLength = 1024

var cleanHeader = sanitizer.Compose(
	sanitizer.Unslash,
	sanitizer.StripTags,
	sanitizer.SingleLine,
	sanitizer.RemoveControlChars,
	func(s string) string { return sanitizer.MaxBytes(s, maxHeaderLength) },
)

// CurrentUserAgent returns the sanitized User-Agent header of r, or an empty
// string when r is nil or the header is missing.
func CurrentUserAgent(r *http.Request) string {
	if r == nil {
		return ""
	}
	return SanitizeHeader(r.UserAgent())
}

// SanitizeHeader unslashes raw, strips HTML tags and folds it into a single line.
func SanitizeHeader(raw string) string {
	if raw == "" {
		return ""
	}
	return cleanHeader(raw)
}

// RequestSource returns a Source reading the sanitized User-Agent header of r.
func RequestSource(r *http.Request) Source {
	return func() string { return CurrentUserAgent(r) }
}

// FromRequest classifies the sanitized User-Agent header of r.
func FromRequest(r *http.Request) UserAgent {
	return ParseFrom(RequestSource(r))
}
