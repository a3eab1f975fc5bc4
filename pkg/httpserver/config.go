package httpserver

import "time"

// Config is the env-tagged server configuration.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// NewFromConfig builds a Server from cfg. Zero fields keep the defaults;
// opts are applied after cfg.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	fromCfg := make([]Option, 0, 6+len(opts))
	if cfg.Addr != "" {
		fromCfg = append(fromCfg, WithAddr(cfg.Addr))
	}
	timeouts := []struct {
		d   time.Duration
		opt func(time.Duration) Option
	}{
		{cfg.ReadHeaderTimeout, WithReadHeaderTimeout},
		{cfg.ReadTimeout, WithReadTimeout},
		{cfg.WriteTimeout, WithWriteTimeout},
		{cfg.IdleTimeout, WithIdleTimeout},
		{cfg.ShutdownTimeout, WithShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.d > 0 {
			fromCfg = append(fromCfg, t.opt(t.d))
		}
	}
	return New(append(fromCfg, opts...)...)
}
