// Package useragent classifies HTTP User-Agent strings into a browser family,
// an operating system and a device category (mobile, tablet, desktop, bot).
//
// Classification is a deterministic scan over static, ordered signature
// tables. Order is the whole trick: Edge and Opera carry a Chrome token, every
// iOS browser carries a Safari token, and Android phones differ from Android
// tablets only by the "Mobile" token. The first signature that matches wins,
// so the tables list specific rules before generic ones.
//
// # Architecture
//
//	┌──────────────┐            ┌───────────────┐
//	│ signatures.go│───tables──▶│  matcher.go   │
//	└──────────────┘            └───────┬───────┘
//	                                    │ first match / any match
//	              ┌─────────────────────┼────────────────────┐
//	              ▼                     ▼                    ▼
//	        ┌───────────┐        ┌───────────┐        ┌────────────┐
//	        │browser.go │        │  os.go    │        │ device.go  │
//	        └─────┬─────┘        └─────┬─────┘        └─────┬──────┘
//	              └───────────▶ useragent.go ◀──────────────┘
//
// catalog.go enumerates every label the tables can produce, for building UI
// choice lists, and does not depend on any input. request.go, context.go and
// middleware.go connect the pure core to net/http.
//
// # Usage
//
// Free functions work on a raw string and never fail; absence of a match is
// reported with a false second return value:
//
//	if browser, ok := useragent.DetectBrowser(ua); ok {
//	    log.Printf("browser=%s", browser)
//	}
//
//	switch useragent.DetectDeviceType(ua) {
//	case useragent.DeviceTypeBot:
//	    // skip heavy rendering
//	case useragent.DeviceTypeMobile, useragent.DeviceTypeTablet:
//	    // serve touch-friendly assets
//	}
//
//	fmt.Println(useragent.Formatted(ua)) // "Chrome on Windows 10"
//
// Parse computes every axis once and keeps the versions as well:
//
//	ua := useragent.Parse(r.UserAgent())
//	slog.Info("request", "client", ua) // UserAgent implements slog.LogValuer
//
// Inside HTTP handlers use the middleware and read the result from context:
//
//	mux.Handle("/", useragent.Middleware(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ua := useragent.FromContext(r.Context())
//	    if ua.IsBot() { ... }
//	}
//
// # Catalog
//
//	browsers := useragent.ListBrowsers(useragent.WithLocalizer(translator, "de"))
//	json.NewEncoder(w).Encode(browsers.Records()) // [{"value":"Chrome","label":"Chrome"}, ...]
//
// # Error Handling
//
// The package defines no errors. Empty input yields no browser, no OS, false
// for every predicate and DeviceTypeUnknown. Patterns are compiled at init
// time, so a broken pattern panics on start-up rather than at request time.
//
// # Concurrency
//
// All tables are read-only after initialization; every function is safe for
// concurrent use without synchronization.
package useragent
