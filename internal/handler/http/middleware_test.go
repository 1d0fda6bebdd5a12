package http

import (
	"bytes"
	"compress/gzip"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// withTraceID / withLogging
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	generated := rr.Header().Get(traceIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	given := uuid.NewString()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, given)
	rr = httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	assert.Equal(t, given, rr.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "not-a-uuid\nforged=1")
	rr = httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	replaced := rr.Header().Get(traceIDHeader)
	assert.NotContains(t, replaced, "forged")
	_, err = uuid.Parse(replaced)
	assert.NoError(t, err)
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})))

	traceID := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/api/teapot", nil)
	req.Header.Set(traceIDHeader, traceID)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	for _, want := range []string{`"method":"POST"`, `"uri":"/api/teapot"`, `"status":418`, `"size":15`, `"trace_id":"` + traceID + `"`} {
		assert.Contains(t, line, want)
	}
}

// ─────────────────────────────────────────────
// withGZipBody
// ─────────────────────────────────────────────

func TestWithGZipBody_DecompressesRequest(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte("a;b;c"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var received string
	handler := withGZipBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		assert.NoError(t, r.Body.Close())
		assert.NoError(t, r.Body.Close())
	}))

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "a;b;c", received)
}

func TestWithGZipBody_PlainRequest(t *testing.T) {
	var received string
	handler := withGZipBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain")))

	assert.Equal(t, "plain", received)
}

func TestWithGZipBody_InvalidRequestBody(t *testing.T) {
	called := false
	handler := withGZipBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

// ─────────────────────────────────────────────
// uploadIntegrity
// ─────────────────────────────────────────────

type closeTrackingBody struct {
	io.Reader
	closed bool
}

func (b *closeTrackingBody) Close() error {
	b.closed = true
	return nil
}

func TestUploadIntegrity_ClosesOriginalBody(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	payload := []byte("a;b;c")

	tests := []struct {
		name       string
		hash       string
		wantStatus int
	}{
		{"matching", hex.EncodeToString(utils.Hash(payload)), http.StatusOK},
		{"mismatching", hex.EncodeToString(utils.Hash([]byte("other"))), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := &closeTrackingBody{Reader: bytes.NewReader(payload)}

			var received string
			handler := h.uploadIntegrity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				received = string(body)
			}))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Body = original
			req.Header.Set(contentHashHeader, tt.hash)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.True(t, original.closed)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, string(payload), received)
			}
		})
	}
}

func TestWithLogging_ServerErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/deliveries", nil))

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/filters", nil))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":0`)
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/filters", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/profiles/{profile}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/filters", http.StatusOK},
		{http.MethodPost, "/api/filters", http.StatusNotFound},
		{http.MethodDelete, "/api/filters", http.StatusNotFound},
		{http.MethodGet, "/api/profiles/admin", http.StatusOK},
		{http.MethodPost, "/api/profiles/admin", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
		})
	}
}
