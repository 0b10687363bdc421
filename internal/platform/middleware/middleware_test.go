package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubase/pkg/requestcontext"
	"edubase/pkg/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestID(t *testing.T) {
	t.Run("generates an ID when none supplied", func(t *testing.T) {
		var captured string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetRequestID(r.Context())
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, captured)
		_, err := uuid.Parse(captured)
		assert.NoError(t, err, "generated request ID should be a UUID")
		assert.Equal(t, captured, w.Header().Get("X-Request-ID"))
	})

	t.Run("honors inbound X-Request-ID", func(t *testing.T) {
		var captured string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, "req-42", captured)
		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	})
}

func TestClientMetadata(t *testing.T) {
	newHandler := func(ip, ua *string) http.Handler {
		return ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*ip = requestcontext.ClientIP(r.Context())
			*ua = requestcontext.UserAgent(r.Context())
		}))
	}

	t.Run("prefers X-Forwarded-For first hop", func(t *testing.T) {
		var ip, ua string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		req.Header.Set("User-Agent", "curl/8.0")

		newHandler(&ip, &ua).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "203.0.113.9", ip)
		assert.Equal(t, "curl/8.0", ua)
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		var ip, ua string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "198.51.100.7")

		newHandler(&ip, &ua).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "198.51.100.7", ip)
	})

	t.Run("strips port from RemoteAddr", func(t *testing.T) {
		var ip, ua string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.4:51234"

		newHandler(&ip, &ua).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "192.0.2.4", ip)
	})
}

func TestLogger(t *testing.T) {
	t.Run("logs completion with request metadata", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		h := RequestID(Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})))

		req := httptest.NewRequest(http.MethodPost, "/establishments", nil)
		req.Header.Set("X-Request-ID", "req-log-1")
		h.ServeHTTP(httptest.NewRecorder(), req)

		out := buf.String()
		assert.Contains(t, out, "request completed")
		assert.Contains(t, out, "req-log-1")
		assert.Contains(t, out, "status=201")
	})

	t.Run("reads client metadata from the request context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/establishments", nil)
		req = testutil.WithRequestID(req, "req-ctx-1")
		req = testutil.WithClientMetadata(req, "203.0.113.9", "curl/8.0")
		h.ServeHTTP(httptest.NewRecorder(), req)

		out := buf.String()
		assert.Contains(t, out, "request_id=req-ctx-1")
		assert.Contains(t, out, "client_ip=203.0.113.9")
	})

	t.Run("client errors log at warn level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/establishments/999999", nil))

		out := buf.String()
		assert.Contains(t, out, "request rejected")
		assert.Contains(t, out, "level=WARN")
	})
}

func TestRecovery(t *testing.T) {
	h := Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal_error"}`, w.Body.String())
}

func TestTimeout(t *testing.T) {
	h := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		assert.True(t, ok, "handler context should carry a deadline")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestContentTypeJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("rejects non-JSON bodies on POST", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()

		ContentTypeJSON(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("accepts JSON with charset parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		w := httptest.NewRecorder()

		ContentTypeJSON(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("ignores GET requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()

		ContentTypeJSON(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
