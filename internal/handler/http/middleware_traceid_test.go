package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/MKhiriev/consent-keeper/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareHandler() *Handler {
	return &Handler{logger: logger.Nop(), ids: utils.NewUUIDGenerator()}
}

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	rr, captured := executeWithTraceID(newBareHandler(), "my-custom-trace-id")

	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
	require.NotNil(t, captured)
}

func TestWithTraceID_GeneratesUniqueUUIDs(t *testing.T) {
	h := newBareHandler()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)

		parsed, err := uuid.Parse(id)
		require.NoError(t, err, "trace ID must be a valid UUID, got: %s", id)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	_, captured := executeWithTraceID(newBareHandler(), "trace-1")

	require.NotNil(t, captured)
	assert.NotNil(t, log.Ctx(captured.Context()))
}
