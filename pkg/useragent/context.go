package useragent

import (
	"context"
)

type userAgentContextKey struct{}

// SetToContext stores a classified user agent in ctx.
func SetToContext(ctx context.Context, ua UserAgent) context.Context {
	return context.WithValue(ctx, userAgentContextKey{}, ua)
}

// GetFromContext retrieves the user agent stored by SetToContext.
func GetFromContext(ctx context.Context) (UserAgent, bool) {
	if ctx == nil {
		return UserAgent{}, false
	}
	ua, ok := ctx.Value(userAgentContextKey{}).(UserAgent)
	return ua, ok
}

// FromContext returns the stored user agent, or the classification of an
// empty string when none was stored.
func FromContext(ctx context.Context) UserAgent {
	if ua, ok := GetFromContext(ctx); ok {
		return ua
	}
	return Parse("")
}
