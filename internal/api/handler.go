// Package api exposes user agent classification over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/uadetect/pkg/i18n"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

const (
	// MaxBatchSize caps the number of user agents in one POST /v1/detect.
	MaxBatchSize = 100
	maxBodyBytes = 1 << 20
)

// Catalog kinds served by GET /v1/catalog/{kind}.
const (
	CatalogBrowsers = "browsers"
	CatalogOS       = "os"
	CatalogDevices  = "devices"
)

// Handler serves the API endpoints.
type Handler struct {
	localizer useragent.Localizer
	log       *slog.Logger
}

// NewHandler returns a Handler. Without a translator labels and messages stay
// in English; a nil log discards output.
func NewHandler(translator *i18n.Translator, log *slog.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	h := &Handler{log: log.With(logger.Component("api"))}
	if translator != nil {
		h.localizer = translator
	}
	return h
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Detect classifies the "ua" query parameter, or the caller's own
// User-Agent header when the parameter is absent.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	ua := useragent.FromContext(r.Context())
	if r.URL.Query().Has("ua") {
		ua = useragent.Parse(useragent.SanitizeHeader(r.URL.Query().Get("ua")))
	}

	lang := i18n.GetLocale(r.Context())
	h.respond(w, NewDetection(ua, h.localizer, lang), map[string]any{"lang": lang})
}

type batchRequest struct {
	UserAgents []string `json:"user_agents"`
}

// DetectBatch classifies up to MaxBatchSize user agents, keeping input order.
func (h *Handler) DetectBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.fail(w, r, errors.Join(ErrBadRequest, err))
		return
	}
	if len(req.UserAgents) == 0 {
		h.fail(w, r, ErrBadRequest)
		return
	}
	if len(req.UserAgents) > MaxBatchSize {
		h.fail(w, r, ErrTooManyUserAgents.With("max", strconv.Itoa(MaxBatchSize)))
		return
	}

	lang := i18n.GetLocale(r.Context())
	results := make([]Detection, len(req.UserAgents))
	for i, raw := range req.UserAgents {
		results[i] = NewDetection(useragent.Parse(useragent.SanitizeHeader(raw)), h.localizer, lang)
	}
	h.respond(w, results, map[string]any{"lang": lang, "count": len(results)})
}

// Catalog lists browsers, operating systems or device types with labels in
// the request language. "?format=records" returns value/label records.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	lang := i18n.GetLocale(r.Context())

	catalog, ok := ListCatalog(kind, useragent.WithLocalizer(h.localizer, lang))
	if !ok {
		h.fail(w, r, ErrUnknownCatalog.With("kind", kind))
		return
	}

	meta := map[string]any{"kind": kind, "lang": lang, "count": len(catalog)}
	if r.URL.Query().Get("format") == "records" {
		h.respond(w, catalog.Records(), meta)
		return
	}
	h.respond(w, catalog, meta)
}

// ListCatalog returns the catalog named kind.
func ListCatalog(kind string, opts ...useragent.CatalogOption) (useragent.Catalog, bool) {
	switch kind {
	case CatalogBrowsers:
		return useragent.ListBrowsers(opts...), true
	case CatalogOS:
		return useragent.ListOperatingSystems(opts...), true
	case CatalogDevices:
		return useragent.ListDeviceTypes(opts...), true
	}
	return nil, false
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, ErrNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, ErrMethodNotAllowed)
}
