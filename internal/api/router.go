package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uadetect/pkg/clientip"
	"github.com/dmitrymomot/uadetect/pkg/i18n"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/requestid"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

// RouterOption configures NewRouter.
type RouterOption func(*routerConfig)

type routerConfig struct {
	trustedIPHeaders []string
}

// WithTrustedIPHeaders lists the forwarding headers, in priority order, that
// may carry the client address. By default only the remote address is used.
func WithTrustedIPHeaders(headers ...string) RouterOption {
	return func(c *routerConfig) {
		c.trustedIPHeaders = append(c.trustedIPHeaders, headers...)
	}
}

// NewRouter wires the API routes and the middleware chain: request id, client
// address, panic recovery, client detection, language negotiation and request
// logging.
func NewRouter(translator *i18n.Translator, log *slog.Logger, opts ...RouterOption) http.Handler {
	cfg := &routerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	h := NewHandler(translator, log)

	var supported []string
	defaultLang := i18n.DefaultLanguage
	if translator != nil {
		supported = translator.SupportedLanguages()
		defaultLang = translator.DefaultLanguage()
	}
	extractLang := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(supported...))

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(cfg.trustedIPHeaders...),
		middleware.Recoverer,
		useragent.Middleware,
		i18n.Middleware(func(req *http.Request) string {
			if lang := extractLang(req); lang != "" {
				return lang
			}
			return defaultLang
		}),
		requestLogger(h.log),
	)
	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.methodNotAllowed)

	r.Get("/healthz", h.Health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/detect", h.Detect)
		r.Post("/detect", h.DetectBatch)
		r.Get("/catalog/{kind}", h.Catalog)
	})
	return r
}

// requestLogger logs one record per request with its outcome. The request id
// and client address are attached by the logger's context extractors.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("lang", i18n.GetLocale(r.Context())),
				logger.Client(useragent.FromContext(r.Context())),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
