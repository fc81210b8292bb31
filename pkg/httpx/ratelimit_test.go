package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lumacart/lumacart/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("allows requests under the limit", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}
		h := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		for range 5 {
			rec := doRequest(t, h, "10.0.0.1:1234")
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("rejects requests over the burst", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
		h := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		doRequest(t, h, "10.0.0.2:1234")
		doRequest(t, h, "10.0.0.2:1234")
		rec := doRequest(t, h, "10.0.0.2:1234")

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Contains(t, rec.Body.String(), "too many requests")
	})

	t.Run("limits are per key", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		h := httpx.RateLimitMiddleware(config, httpx.IPKeyExtractor)(okHandler())

		require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.3:1234").Code)
		require.Equal(t, http.StatusTooManyRequests, doRequest(t, h, "10.0.0.3:1234").Code)
		// Different IP still has its full budget.
		require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.4:1234").Code)
	})

	t.Run("allows when key cannot be extracted", func(t *testing.T) {
		config := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		empty := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(config, empty)(okHandler())

		require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.5:1234").Code)
		require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.5:1234").Code)
	})
}

func TestIPKeyExtractor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	require.Equal(t, "192.0.2.1", httpx.IPKeyExtractor(req))

	req.Header.Set("X-Real-IP", "203.0.113.9")
	require.Equal(t, "203.0.113.9", httpx.IPKeyExtractor(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	require.Equal(t, "198.51.100.7", httpx.IPKeyExtractor(req))
}

func TestCompositeKeyExtractor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	req.Header.Set("X-Login-Identifier", "a@b.com")

	extractor := httpx.CompositeKeyExtractor(":",
		httpx.IPKeyExtractor,
		httpx.HeaderKeyExtractor("X-Login-Identifier"),
	)
	require.Equal(t, "192.0.2.1:a@b.com", extractor(req))
}
