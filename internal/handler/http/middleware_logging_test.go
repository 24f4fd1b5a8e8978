package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a request carrying a logger that writes to buf, the
// way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		header          map[string]string
		handlerStatus   int
		handlerResponse string
		wantInLog       []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/health",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"status":"ok"}`,
			wantInLog:       []string{`"method":"GET"`, `"uri":"/api/health"`, `"status":200`, `"size":15`, `"duration":`},
		},
		{
			name:          "POST 401",
			method:        http.MethodPost,
			path:          "/api/cmp/consent",
			handlerStatus: http.StatusUnauthorized,
			wantInLog:     []string{`"method":"POST"`, `"status":401`, `"size":0`},
		},
		{
			name:          "edge proxy ip",
			method:        http.MethodGet,
			path:          "/api/version",
			header:        map[string]string{"CF-Connecting-IP": "203.0.113.9"},
			handlerStatus: http.StatusOK,
			wantInLog:     []string{`"ip":"203.0.113.9"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBareHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &buf)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, want := range tt.wantInLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	newBareHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/", &buf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, buf.String(), `"status":0`)
}
