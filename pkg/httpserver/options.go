package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server. Invalid values panic at construction time.
type Option func(*options)

type options struct {
	addr              string
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
}

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty address")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	mustPositive("read header timeout", d)
	return func(o *options) { o.readHeaderTimeout = d }
}

func WithReadTimeout(d time.Duration) Option {
	mustPositive("read timeout", d)
	return func(o *options) { o.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	mustPositive("write timeout", d)
	return func(o *options) { o.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	mustPositive("idle timeout", d)
	return func(o *options) { o.idleTimeout = d }
}

// WithShutdownTimeout bounds how long in-flight requests may take to finish.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("shutdown timeout", d)
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger sets the lifecycle logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + name + " must be positive")
	}
}
