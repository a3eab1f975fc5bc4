// Package httpserver runs an http.Handler until its context is cancelled and
// then drains in-flight requests.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/uadetect/pkg/logger"
)

var (
	ErrStart          = errors.New("httpserver: failed to start")
	ErrShutdown       = errors.New("httpserver: graceful shutdown failed")
	ErrAlreadyRunning = errors.New("httpserver: already running")
)

// Server wraps http.Server with context-driven graceful shutdown.
type Server struct {
	opts options

	mu      sync.Mutex
	srv     *http.Server
	started bool
}

// New returns a Server listening on :8080 unless configured otherwise.
func New(opts ...Option) *Server {
	o := options{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   10 * time.Second,
		logger:            logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{opts: o}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.opts.addr }

// Run listens on the configured address and serves handler until ctx is done.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.opts.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln, handler)
}

// Serve serves handler on ln until ctx is done, then shuts down gracefully.
// A Server can be started once.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	s.started = true
	s.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.opts.readHeaderTimeout,
		ReadTimeout:       s.opts.readTimeout,
		WriteTimeout:      s.opts.writeTimeout,
		IdleTimeout:       s.opts.idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.opts.logger.Handler(), slog.LevelError),
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	srv := s.srv
	s.mu.Unlock()

	s.opts.logger.InfoContext(ctx, "http server started", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Join(ErrStart, err)
	case <-ctx.Done():
	}

	shutdownErr := s.Shutdown(context.WithoutCancel(ctx))
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return shutdownErr
}

// Shutdown drains in-flight requests within the shutdown timeout.
// Calling it before Serve, or more than once, is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
	defer cancel()

	s.opts.logger.InfoContext(ctx, "http server shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Join(ErrShutdown, err)
	}
	s.opts.logger.InfoContext(ctx, "http server stopped")
	return nil
}
