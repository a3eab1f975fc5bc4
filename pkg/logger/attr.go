package logger

import (
	"log/slog"
	"time"
)

// Group builds a group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty attribute,
// which handlers skip.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Client records a detected client under "client". v is usually a
// useragent.UserAgent, which resolves itself through slog.LogValuer.
func Client(v slog.LogValuer) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any("client", v)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records an elapsed time under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
