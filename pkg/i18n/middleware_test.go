package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/uadetect/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
	assert.Equal(t, "de", i18n.GetLocale(i18n.SetLocale(context.Background(), "de")))
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(i18n.SetLocale(context.Background(), "")))
}

func TestMiddleware(t *testing.T) {
	serve := func(extr i18n.LangExtractor, req *http.Request) string {
		var got string
		h := i18n.Middleware(extr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		}))
		h.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}
	extr := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "de", "fr"))

	t.Run("query parameter wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "de"})
		req.Header.Set("Accept-Language", "de")
		assert.Equal(t, "fr", serve(extr, req))
	})

	t.Run("cookie before header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "de"})
		req.Header.Set("Accept-Language", "fr")
		assert.Equal(t, "de", serve(extr, req))
	})

	t.Run("unsupported query falls through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
		assert.Equal(t, "de", serve(extr, req))
	})

	t.Run("nothing matches", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "ja")
		assert.Equal(t, i18n.DefaultLanguage, serve(extr, req))
	})

	t.Run("custom parameter and nil extractor", func(t *testing.T) {
		custom := i18n.DefaultLangExtractor(i18n.WithQueryParamName("locale"), i18n.WithCookieName("locale"))
		req := httptest.NewRequest(http.MethodGet, "/?locale=pt-br", nil)
		assert.Equal(t, "pt-BR", serve(custom, req))

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "es-MX")
		assert.Equal(t, "es-MX", serve(nil, req))
	})
}
