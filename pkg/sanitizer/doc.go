// Package sanitizer provides small, composable string transformations used to
// clean untrusted header values before they are classified or logged.
//
// Every helper has the signature func(string) string, so they chain with the
// generic Apply and Compose helpers:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Unslash,
//	    sanitizer.StripTags,
//	    sanitizer.SingleLine,
//	)
//
//	ua := clean(r.Header.Get("User-Agent"))
//
// The package is stateless and safe for concurrent use.
package sanitizer
