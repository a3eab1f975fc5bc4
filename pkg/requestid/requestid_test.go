package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uadetect/pkg/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()
		ctxID, headerID := serve(t, "")
		require.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, headerID)

		parsed, err := uuid.Parse(ctxID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		t.Parallel()
		ctxID, headerID := serve(t, "edge_proxy-42")
		assert.Equal(t, "edge_proxy-42", ctxID)
		assert.Equal(t, "edge_proxy-42", headerID)
	})

	t.Run("replaces invalid incoming ids", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"<script>", "id with spaces", strings.Repeat("a", 129)} {
			ctxID, _ := serve(t, bad)
			assert.NotEqual(t, bad, ctxID)
			assert.NotEmpty(t, ctxID)
		}
	})
}

func TestContext(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "abc", requestid.FromContext(requestid.WithContext(context.Background(), "abc")))
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()
	_, ok := requestid.LogExtractor(context.Background())
	assert.False(t, ok)

	attr, ok := requestid.LogExtractor(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
