package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/uadetect/pkg/i18n"
	"github.com/dmitrymomot/uadetect/pkg/logger"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) respond(w http.ResponseWriter, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data, Meta: meta})
}

// fail renders err as a translated error envelope. Errors that are not an
// HTTPError are logged and reported as internal errors.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		httpErr = ErrInternal
	}

	message := http.StatusText(httpErr.Code)
	if h.localizer != nil {
		key := "errors." + httpErr.Key
		if m := h.localizer.T(i18n.GetLocale(r.Context()), key, httpErr.Args...); m != "" && m != key {
			message = m
		}
	}

	h.log.DebugContext(r.Context(), "request rejected",
		slog.Int("status", httpErr.Code),
		slog.String("code", httpErr.Key),
	)
	writeJSON(w, httpErr.Code, Envelope{Error: &ErrorDetail{Code: httpErr.Key, Message: message}})
}
