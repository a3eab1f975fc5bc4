// Package clientip resolves the address of the caller of an HTTP request.
//
// Forwarding headers are only honoured when listed explicitly, since any
// client can set them. Without trusted headers the connection's remote
// address is used.
package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Forwarding headers set by common proxies and CDNs.
const (
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRealIP         = "X-Real-IP"
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderDOConnectingIP = "DO-Connecting-IP"
)

type contextKey struct{}

// Resolve returns the first valid address found in the trusted headers, in
// the given order, falling back to r.RemoteAddr. Comma separated header
// values yield their leftmost valid entry. It returns "" when nothing parses.
func Resolve(r *http.Request, trusted ...string) string {
	if r == nil {
		return ""
	}
	for _, name := range trusted {
		for part := range strings.SplitSeq(r.Header.Get(name), ",") {
			if ip := normalize(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return normalize(host)
}

// Middleware stores the resolved address in the request context.
func Middleware(trusted ...string) func(http.Handler) http.Handler {
	headers := make([]string, 0, len(trusted))
	for _, h := range trusted {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, http.CanonicalHeaderKey(h))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), Resolve(r, headers...))))
		})
	}
}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// LogExtractor adds "client_ip" to log records whose context carries one.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	if ip := FromContext(ctx); ip != "" {
		return slog.String("client_ip", ip), true
	}
	return slog.Attr{}, false
}

// normalize returns the canonical form of s, unmapping IPv4-in-IPv6
// addresses, or "" when s is not an address.
func normalize(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}
