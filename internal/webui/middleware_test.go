package webui

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techexpo.dev/landing/internal/appconf"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("test response"))
	})
}

func TestCompressionMiddleware(t *testing.T) {
	large := strings.Repeat("monitoring best practices ", 100)
	bodyHandler := func(body string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte(body))
		})
	}

	t.Run("compresses responses above the minimum size", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		CompressionMiddleware(bodyHandler(large)).ServeHTTP(rec, req)

		require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		reader, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		decoded, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, large, string(decoded))
	})

	t.Run("leaves small responses alone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		CompressionMiddleware(bodyHandler("ok")).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("honours clients without gzip", func(t *testing.T) {
		rec := httptest.NewRecorder()

		CompressionMiddleware(bodyHandler(large)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, large, rec.Body.String())
	})
}

func TestSecurityHeaders(t *testing.T) {
	rec := serve(t, securityHeaders(okHandler()), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test response", rec.Body.String())

	headers := rec.Header()
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
	assert.Contains(t, headers.Get("Content-Security-Policy"), "script-src 'self'")
	assert.Contains(t, headers.Get("Content-Security-Policy"), "frame-ancestors 'none'")
}

func TestRequestID(t *testing.T) {
	t.Run("generates an id", func(t *testing.T) {
		var seen string
		handler := withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestID(r.Context())
		}))

		rec := serve(t, handler, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(requestIDHeader))
	})

	t.Run("reuses inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "edge-1234")

		rec := serve(t, withRequestID(okHandler()), req)
		assert.Equal(t, "edge-1234", rec.Header().Get(requestIDHeader))
	})

	t.Run("replaces oversized inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, strings.Repeat("x", 200))

		rec := serve(t, withRequestID(okHandler()), req)
		_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
		assert.NoError(t, err)
	})
}

func TestRequestLoggingMiddleware(t *testing.T) {
	ui, buf := createTestWebUI(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz?verbose=1", nil)
	req.Header.Set("User-Agent", "test-client/1.0")
	req.Header.Set(requestIDHeader, "req-42")
	serve(t, ui.Handler(), req)

	var logged map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "http_request" {
			logged = entry
		}
	}
	require.NotNil(t, logged, "expected an http_request log line")

	assert.Equal(t, "GET", logged["method"])
	assert.Equal(t, "/healthz", logged["path"])
	assert.Equal(t, float64(http.StatusServiceUnavailable), logged["status"])
	assert.Equal(t, "test-client/1.0", logged["user_agent"])
	assert.Equal(t, "req-42", logged["request_id"])
	assert.Equal(t, "http_server", logged["component"])
	assert.Contains(t, logged, "duration_ms")
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks requests over limit", func(t *testing.T) {
		rl := NewRateLimitMiddleware(3, time.Second)
		defer rl.Stop()
		handler := rl.Handler(okHandler())

		for i := 0; i < 3; i++ {
			rec := serve(t, handler, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i+1)
		}

		rec := serve(t, handler, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
	})

	t.Run("limits each client separately", func(t *testing.T) {
		rl := NewRateLimitMiddleware(1, time.Second)
		defer rl.Stop()
		handler := rl.Handler(okHandler())

		first := httptest.NewRequest(http.MethodGet, "/", nil)
		first.RemoteAddr = "192.0.2.1:1000"
		second := httptest.NewRequest(http.MethodGet, "/", nil)
		second.RemoteAddr = "192.0.2.2:1000"

		assert.Equal(t, http.StatusOK, serve(t, handler, first).Code)
		assert.Equal(t, http.StatusOK, serve(t, handler, second).Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(t, handler, first).Code)
	})

	t.Run("zero rate blocks everything", func(t *testing.T) {
		rl := NewRateLimitMiddleware(0, time.Second)
		defer rl.Stop()

		rec := serve(t, rl.Handler(okHandler()), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "3600", rec.Header().Get("Retry-After"))
	})

	t.Run("negative rate disables limiting", func(t *testing.T) {
		rl := NewRateLimitMiddleware(-1, time.Second)
		defer rl.Stop()
		handler := rl.Handler(okHandler())

		for i := 0; i < 50; i++ {
			assert.Equal(t, http.StatusOK, serve(t, handler, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
		}
	})

	t.Run("evicts idle clients", func(t *testing.T) {
		rl := NewRateLimitMiddleware(1, time.Second)
		defer rl.Stop()

		now := time.Now()
		rl.now = func() time.Time { return now }
		rl.getLimiter("192.0.2.1")

		rl.now = func() time.Time { return now.Add(10 * time.Minute) }
		rl.evictIdle()

		rl.mu.Lock()
		defer rl.mu.Unlock()
		assert.Empty(t, rl.limiters)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		rl := NewRateLimitMiddleware(1, time.Second)
		rl.Stop()
		assert.NotPanics(t, rl.Stop)
	})
}

func TestRateLimitAppliesToSite(t *testing.T) {
	ui, _ := createTestWebUI(t, func(cfg *appconf.Config) {
		cfg.RateLimit = 2
	})
	handler := ui.Handler()

	for i := 0; i < 2; i++ {
		rec := serve(t, handler, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := serve(t, handler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Content-Type-Options"))
}
